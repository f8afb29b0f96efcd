package daynight

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BallState is the moving part of one ball, in world units.
type BallState struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	DirX float64 `json:"dir_x"`
	DirY float64 `json:"dir_y"`
}

// Snapshot is a JSON-friendly dump of one simulation moment. Cells is
// the board in row-major order, one letter per cell: 'D' for day, 'N'
// for night.
type Snapshot struct {
	Cols      int       `json:"cols"`
	Rows      int       `json:"rows"`
	CellSize  float64   `json:"cell_size"`
	Cells     string    `json:"cells"`
	DayBall   BallState `json:"day_ball"`
	NightBall BallState `json:"night_ball"`
	Ticks     uint64    `json:"ticks"`
	Flips     int       `json:"flips"`
	Paused    bool      `json:"paused"`
}

// Snapshot captures the current state of the simulation.
func (s *Simulation) Snapshot() Snapshot {
	var cells strings.Builder
	cells.Grow(len(s.Grid.Cells))
	for i := range s.Grid.Cells {
		if s.Grid.Cells[i].Side == SideDay {
			cells.WriteByte('D')
		} else {
			cells.WriteByte('N')
		}
	}

	return Snapshot{
		Cols:     s.Grid.Cols,
		Rows:     s.Grid.Rows,
		CellSize: s.Grid.CellSize,
		Cells:    cells.String(),
		DayBall: BallState{
			X: s.DayBall.Center.X, Y: s.DayBall.Center.Y,
			DirX: s.DayBall.Dir.X, DirY: s.DayBall.Dir.Y,
		},
		NightBall: BallState{
			X: s.NightBall.Center.X, Y: s.NightBall.Center.Y,
			DirX: s.NightBall.Dir.X, DirY: s.NightBall.Dir.Y,
		},
		Ticks:  s.Ticks,
		Flips:  s.Flips,
		Paused: s.Paused,
	}
}

// SideAt reads a cell side back out of the snapshot's cell string.
func (snap Snapshot) SideAt(col, row int) (Side, error) {
	idx := row*snap.Cols + col
	if col < 0 || col >= snap.Cols || row < 0 || row >= snap.Rows || idx >= len(snap.Cells) {
		return SideDay, fmt.Errorf("daynight: cell (%d, %d) outside %dx%d snapshot", col, row, snap.Cols, snap.Rows)
	}
	if snap.Cells[idx] == 'D' {
		return SideDay, nil
	}
	return SideNight, nil
}

// FinalState serializes the current simulation state for the session log.
func (g *Game) FinalState() (string, error) {
	data, err := json.Marshal(g.sim.Snapshot())
	if err != nil {
		return "", fmt.Errorf("daynight: cannot serialize snapshot: %w", err)
	}
	return string(data), nil
}
