package daynight

// Params fixes the board geometry and ball dynamics for one run.
type Params struct {
	Cols       int
	Rows       int
	CellSize   float64
	BallRadius float64
	BallSpeed  float64 // world units per millisecond
}

// DefaultParams returns the classic board: 10x10 cells of 25 units,
// radius-10 balls moving half a unit per millisecond.
func DefaultParams() Params {
	return Params{
		Cols:       10,
		Rows:       10,
		CellSize:   25.0,
		BallRadius: 10.0,
		BallSpeed:  0.5,
	}
}

// Simulation owns the board and both balls and advances them tick by
// tick. It is driven from a single goroutine; nothing here locks.
type Simulation struct {
	Grid      *Grid
	DayBall   Ball
	NightBall Ball

	// Running is the process-lifetime flag: it starts true and
	// RequestQuit drops it to false exactly once. Paused gates ticking
	// and toggles freely. A fresh simulation starts paused.
	Running bool
	Paused  bool

	// Ticks counts calls to Tick that actually advanced the world.
	// Flips counts cells that changed hands, both balls combined.
	Ticks uint64
	Flips int
}

// NewSimulation builds the initial world: left half of the board day,
// right half night, balls symmetric about the center offset a quarter
// board to either side, moving along opposite diagonals.
func NewSimulation(p Params) *Simulation {
	g := NewGrid(p.Cols, p.Rows, p.CellSize)
	midX := g.Width() / 2
	midY := g.Height() / 2
	offset := g.Width() / 4
	return &Simulation{
		Grid: g,
		DayBall: Ball{
			Side:   SideDay,
			Center: Vec2{X: midX + offset, Y: midY},
			Dir:    Vec2{X: 1, Y: 1}.Normalize(),
			Radius: p.BallRadius,
			Speed:  p.BallSpeed,
		},
		NightBall: Ball{
			Side:   SideNight,
			Center: Vec2{X: midX - offset, Y: midY},
			Dir:    Vec2{X: -1, Y: -1}.Normalize(),
			Radius: p.BallRadius,
			Speed:  p.BallSpeed,
		},
		Running: true,
		Paused:  true,
	}
}

// TogglePause flips the pause gate.
func (s *Simulation) TogglePause() {
	s.Paused = !s.Paused
}

// RequestQuit marks the run as over.
func (s *Simulation) RequestQuit() {
	s.Running = false
}

// Tick advances the world by dt milliseconds: day ball first, then
// night ball. The order is observable because the balls share the
// board; a cell the day ball flips is already retagged when the night
// ball scans. While paused, Tick changes nothing.
func (s *Simulation) Tick(dt float64) {
	if s.Paused {
		return
	}
	if s.DayBall.Advance(s.Grid, dt) {
		s.Flips++
	}
	if s.NightBall.Advance(s.Grid, dt) {
		s.Flips++
	}
	s.Ticks++
}
