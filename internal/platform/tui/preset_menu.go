package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/daynight/internal/core"
)

// PresetSelection holds the user's choice from the speed preset menu.
type PresetSelection struct {
	Preset string // Preset name, empty for the config default
}

// presetOption is one line in the speed preset menu.
type presetOption struct {
	name  string
	label string
}

// Preset names mirror the ball speed presets from the game config.
var presetOptions = []presetOption{
	{name: "", label: "Default (from config)"},
	{name: "classic", label: "Classic"},
	{name: "slow", label: "Slow motion"},
	{name: "fast", label: "Fast forward"},
}

// PresetMenuModel lets users choose a ball speed preset before starting.
type PresetMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection PresetSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewPresetMenuModel creates a new speed preset selection model.
func NewPresetMenuModel(width, height int) PresetMenuModel {
	return PresetMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PresetMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PresetMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(presetOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PresetSelection{Preset: presetOptions[m.cursor].name}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset selection.
func (m PresetMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("D A Y  &  N I G H T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select ball speed:", m.width))
	b.WriteString("\n\n")

	for i, opt := range presetOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PresetMenuModel) Selected() *PresetSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PresetMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PresetMenuModel) WantsBack() bool {
	return m.back
}

// RunPresetSelector runs the speed preset selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunPresetSelector(cfg core.RuntimeConfig) (*PresetSelection, core.RuntimeConfig, error) {
	model := NewPresetMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PresetMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
