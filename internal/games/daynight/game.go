// Package daynight implements the day & night territory duel: two
// balls bounce inside a split board, each flipping cells of its own
// camp to the other side on contact, so the frontier between the two
// halves keeps shifting for as long as the simulation runs.
package daynight

import (
	"fmt"

	"github.com/vovakirdan/daynight/internal/config"
	"github.com/vovakirdan/daynight/internal/core"
	"github.com/vovakirdan/daynight/internal/registry"
)

// Visual characters for rendering
const (
	CellChar = '█'
	BallChar = '●'
)

// DefaultTickRate is the fallback when the runtime does not supply one.
const DefaultTickRate = 60

// configPath stores the custom config path set via CLI
var configPath string

// speedPreset stores the speed preset set via CLI
var speedPreset config.SpeedPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the ball speed preset.
func SetSpeedPreset(preset string) {
	switch preset {
	case "classic":
		speedPreset = config.PresetClassic
	case "slow":
		speedPreset = config.PresetSlow
	case "fast":
		speedPreset = config.PresetFast
	default:
		speedPreset = ""
	}
}

// Game adapts the simulation to the arcade runtime: action mapping,
// fixed-step ticking, and terminal rendering.
type Game struct {
	sim *Simulation
	cfg config.DaynightConfig

	// Timing
	dt float64 // milliseconds per tick, derived from the tick rate

	// Layout (computed from screen size)
	runtime  core.RuntimeConfig
	cellW    int // Width of each board cell in terminal chars
	cellH    int // Height of each board cell in terminal lines
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a new Day & Night game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "daynight"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Day & Night"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadDaynight(configPath)
	if err != nil {
		cfg = config.DefaultDaynightConfig()
	}

	// Apply speed preset if set
	if speedPreset != "" {
		config.ApplyDaynightPreset(&cfg, speedPreset)
	}

	g.cfg = cfg

	g.sim = NewSimulation(Params{
		Cols:       cfg.Grid.Cols,
		Rows:       cfg.Grid.Rows,
		CellSize:   cfg.Grid.CellSize,
		BallRadius: cfg.Ball.Radius,
		BallSpeed:  cfg.Ball.Speed,
	})

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	g.dt = 1000.0 / float64(tickRate)

	g.calculateLayout()
}

// calculateLayout centers the board on the screen and checks that it
// fits with one line of HUD above and one of key hints below.
func (g *Game) calculateLayout() {
	g.cellW = g.cfg.Render.CellW
	g.cellH = g.cfg.Render.CellH

	boardW := g.sim.Grid.Cols * g.cellW
	boardH := g.sim.Grid.Rows * g.cellH

	g.offsetX = (g.runtime.ScreenW - boardW) / 2
	g.offsetY = (g.runtime.ScreenH - boardH) / 2

	// Border takes one extra char on every side
	g.tooSmall = g.runtime.ScreenW < boardW+2 || g.runtime.ScreenH < boardH+4
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}
	if in.Has(core.ActionQuit) {
		g.sim.RequestQuit()
	}

	g.sim.Tick(g.dt)

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := fmt.Sprintf("Terminal too small: need %dx%d",
			g.sim.Grid.Cols*g.cellW+2, g.sim.Grid.Rows*g.cellH+4)
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorRed)
		return
	}

	boardW := g.sim.Grid.Cols * g.cellW
	boardH := g.sim.Grid.Rows * g.cellH

	// Board cells
	for row := 0; row < g.sim.Grid.Rows; row++ {
		for col := 0; col < g.sim.Grid.Cols; col++ {
			color := core.ColorDarkGray
			if g.sim.Grid.At(col, row).Side == SideDay {
				color = core.ColorWhite
			}
			dst.DrawRect(core.NewRect(
				g.offsetX+col*g.cellW,
				g.offsetY+row*g.cellH,
				g.cellW,
				g.cellH,
			), CellChar, color)
		}
	}

	// Border around the board
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, boardW+2, boardH+2), core.ColorGray)

	// Balls
	g.drawBall(dst, g.sim.DayBall, core.ColorBrightWhite)
	g.drawBall(dst, g.sim.NightBall, core.ColorGray)

	// HUD: territory counts above the board, key hints below
	day, night := g.sim.Grid.Counts()
	hudY := g.offsetY - 2
	if hudY < 0 {
		hudY = 0
	}
	dst.DrawTextColored(g.offsetX-1, hudY, fmt.Sprintf("DAY %d", day), core.ColorBrightWhite)
	nightText := fmt.Sprintf("%d NIGHT", night)
	dst.DrawTextColored(g.offsetX+boardW+1-len(nightText), hudY, nightText, core.ColorGray)

	hintY := g.offsetY + boardH + 1
	if hintY < dst.Height() {
		dst.DrawTextCentered(hintY, "space pause · r restart · q quit", core.ColorGray)
	}

	if g.sim.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press Space to run")
	}
}

// drawBall maps a ball's world position onto the board area.
func (g *Game) drawBall(dst *core.Screen, b Ball, color core.Color) {
	boardW := g.sim.Grid.Cols * g.cellW
	boardH := g.sim.Grid.Rows * g.cellH

	x := g.offsetX + core.Clamp(int(b.Center.X/g.sim.Grid.Width()*float64(boardW)), 0, boardW-1)
	y := g.offsetY + core.Clamp(int(b.Center.Y/g.sim.Grid.Height()*float64(boardH)), 0, boardH-1)
	dst.SetCell(x, y, BallChar, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorYellow)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.sim.Flips,
		Paused: g.sim.Paused,
	}
}

// RequestQuit marks the underlying simulation as finished.
func (g *Game) RequestQuit() {
	g.sim.RequestQuit()
}

// TerritoryCounts reports how many cells each side currently holds.
func (g *Game) TerritoryCounts() (day, night int) {
	return g.sim.Grid.Counts()
}

// TicksRun reports how many ticks the simulation has advanced.
func (g *Game) TicksRun() uint64 {
	return g.sim.Ticks
}

// Register the game with the registry
func init() {
	registry.Register("daynight", func() registry.Game {
		return New()
	})
}
