package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/tower"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

// Setup menu rows
const (
	rowVariant = iota
	rowPlayers
	rowMap
	rowStart
	rowCount
)

var variants = []tower.Variant{tower.VariantClimb, tower.VariantArena, tower.VariantEndless}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Selection is what the setup menu chose.
type Selection struct {
	Variant tower.Variant
	Players int
	MapID   string
}

// SetupModel is the Bubble Tea model for the session setup menu: variant,
// player count and map.
type SetupModel struct {
	maps           []level.Map
	variant        int
	players        int
	mapIdx         int
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	help           help.Model
	keys           KeyMap
	quitting       bool
	selected       *Selection
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewSetupModel creates a setup menu over the maps of catalog, preselecting
// initial.
func NewSetupModel(catalog *level.Catalog, cfg core.RuntimeConfig, initial Selection) SetupModel {
	h := help.New()
	h.ShowAll = true

	m := SetupModel{
		maps:    catalog.List(),
		players: core.Clamp(initial.Players, 1, core.MaxPlayers),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		help:    h,
		keys:    DefaultKeyMap(),
	}
	for i, v := range variants {
		if v == initial.Variant {
			m.variant = i
		}
	}
	for i, mp := range m.maps {
		if mp.ID == initial.MapID {
			m.mapIdx = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		if m.cursor != rowStart {
			m.cycle(1)
			return m, nil
		}
		if len(m.maps) > 0 {
			sel := m.Selection()
			m.selected = &sel
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// cycle moves the value under the cursor by delta, wrapping around.
func (m *SetupModel) cycle(delta int) {
	wrap := func(v, n int) int { return ((v+delta)%n + n) % n }
	switch m.cursor {
	case rowVariant:
		m.variant = wrap(m.variant, len(variants))
	case rowPlayers:
		m.players = wrap(m.players-1, core.MaxPlayers) + 1
	case rowMap:
		if len(m.maps) > 0 {
			m.mapIdx = wrap(m.mapIdx, len(m.maps))
		}
	}
}

// Selection returns the values currently shown in the menu.
func (m SetupModel) Selection() Selection {
	sel := Selection{Variant: variants[m.variant], Players: m.players}
	if len(m.maps) > 0 {
		sel.MapID = m.maps[m.mapIdx].ID
	}
	return sel
}

// View renders the menu.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  T O W E R   C L I M B E R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Set up a session", m.width))
	b.WriteString("\n\n")

	mapLabel := "(no maps)"
	if len(m.maps) > 0 {
		mp := m.maps[m.mapIdx]
		mapLabel = fmt.Sprintf("%d. %s", m.mapIdx+1, mp.Name)
	}

	rows := []string{
		fmt.Sprintf("Mode:    < %s >", variants[m.variant]),
		fmt.Sprintf("Players: < %d >", m.players),
		fmt.Sprintf("Map:     < %s >", mapLabel),
		"Start",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = menuCursor.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDim.Render(centerText("Up/Down: Navigate  |  Left/Right: Change  |  Enter: Start  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen setup, or nil if none selected.
func (m SetupModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m SetupModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// SetupResult holds the result of running the setup menu.
type SetupResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunSetup runs the setup menu and returns the selection result.
func RunSetup(catalog *level.Catalog, cfg core.RuntimeConfig, initial Selection) (SetupResult, error) {
	model := NewSetupModel(catalog, cfg, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Config: cfg}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Config: cfg, Quit: true}, nil
	}

	result := SetupResult{
		Config:    m.Config(),
		Selection: m.Selection(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = *m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
