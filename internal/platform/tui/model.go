package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/daynight/internal/core"
	"github.com/vovakirdan/daynight/internal/registry"
	"github.com/vovakirdan/daynight/internal/storage"
)

// sessionReporter is implemented by games that can report a finished run
// for persistence. Games that don't implement it simply aren't recorded.
type sessionReporter interface {
	RequestQuit()
	TerritoryCounts() (day, night int)
	TicksRun() uint64
	FinalState() (string, error)
}

// Model is the Bubble Tea model for running games.
type Model struct {
	game         registry.Game
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	gameState    core.GameState
	startedAt    time.Time
	quitting     bool
	sessionSaved bool // Whether the current run has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit keys
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// Map key to action
	switch msg.String() {
	case " ", "p":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions
	// Note: This resets the simulation - could be improved to preserve state
	m.game.Reset(m.config)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveSession persists the finished run once.
func (m *Model) saveSession() {
	if m.sessionSaved {
		return
	}
	if saveGameSession(m.store, m.game, m.gameState, m.startedAt) {
		m.sessionSaved = true
	}
}

// saveGameSession persists a finished run if the game can report one.
// Runs that never left the paused state are not recorded. Best effort:
// storage problems never block leaving the game.
func saveGameSession(store *storage.Store, game registry.Game, state core.GameState, startedAt time.Time) bool {
	reporter, ok := game.(sessionReporter)
	if !ok {
		return false
	}
	reporter.RequestQuit()

	if store == nil || reporter.TicksRun() == 0 {
		return false
	}

	day, night := reporter.TerritoryCounts()
	finalState, err := reporter.FinalState()
	if err != nil {
		finalState = ""
	}

	sess := storage.Session{
		GameID:     game.ID(),
		DayCells:   day,
		NightCells: night,
		Ticks:      int64(reporter.TicksRun()),
		Flips:      state.Score,
		DurationMs: time.Since(startedAt).Milliseconds(),
		FinalState: finalState,
	}

	//nolint:errcheck // Best-effort save, leaving continues regardless
	store.SaveSession(sess)
	return true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".daynight", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}
