package config

import (
	_ "embed"
)

//go:embed defaults/daynight.yaml
var defaultDaynightYAML []byte

// DefaultDaynightConfig returns the classic board: a 10x10 grid of
// 25-unit cells with 10-unit balls moving half a unit per millisecond.
func DefaultDaynightConfig() DaynightConfig {
	return DaynightConfig{
		Grid: DaynightGrid{
			Cols:     10,
			Rows:     10,
			CellSize: 25.0,
		},
		Ball: DaynightBall{
			Radius: 10.0,
			Speed:  0.5,
		},
		Render: DaynightRender{
			CellW: 4,
			CellH: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "daynight":
		return defaultDaynightYAML
	default:
		return nil
	}
}
