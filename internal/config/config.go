// Package config provides YAML-based configuration loading and speed
// presets for the day & night platform.
package config

import "fmt"

// DaynightConfig contains all configuration for the Day & Night simulation.
type DaynightConfig struct {
	Grid   DaynightGrid   `yaml:"grid"`
	Ball   DaynightBall   `yaml:"ball"`
	Render DaynightRender `yaml:"render"`
}

// DaynightGrid defines the board dimensions in world units.
type DaynightGrid struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"`
}

// DaynightBall defines the moving circles.
type DaynightBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // world units per millisecond
}

// DaynightRender defines how many terminal characters one board cell spans.
type DaynightRender struct {
	CellW int `yaml:"cell_w"`
	CellH int `yaml:"cell_h"`
}

// Validate checks that the configuration describes a playable world.
func (c DaynightConfig) Validate() error {
	if c.Grid.Cols < 2 || c.Grid.Rows < 1 {
		return fmt.Errorf("config: grid must be at least 2x1, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %v", c.Grid.CellSize)
	}
	if c.Ball.Radius <= 0 || c.Ball.Speed <= 0 {
		return fmt.Errorf("config: ball radius and speed must be positive, got %v and %v", c.Ball.Radius, c.Ball.Speed)
	}
	if c.Ball.Radius*2 > c.Grid.CellSize*float64(c.Grid.Cols) {
		return fmt.Errorf("config: ball diameter %v does not fit the board", c.Ball.Radius*2)
	}
	if c.Render.CellW < 1 || c.Render.CellH < 1 {
		return fmt.Errorf("config: render cell must be at least 1x1, got %dx%d", c.Render.CellW, c.Render.CellH)
	}
	return nil
}

// SpeedPreset represents a named simulation pace.
type SpeedPreset string

const (
	PresetClassic SpeedPreset = "classic"
	PresetSlow    SpeedPreset = "slow"
	PresetFast    SpeedPreset = "fast"
)

// SpeedFactorForPreset returns the ball speed multiplier for a preset.
func SpeedFactorForPreset(preset SpeedPreset) float64 {
	switch preset {
	case PresetSlow:
		return 0.5
	case PresetFast:
		return 2.0
	default:
		return 1.0
	}
}
