package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/registry"
	"github.com/vovakirdan/tower-climber/internal/storage"
)

// mapIdentifier is implemented by games that play a named map.
type mapIdentifier interface {
	MapID() string
}

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	held      *HeldKeys
	logger    *log.Logger
	player    string
	lastTick  time.Time
	gameState core.GameState

	allowBack  bool // esc/b ends the session instead of being ignored
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		held:   NewHeldKeys(DefaultHoldWindow),
		logger: log.New(io.Discard),
		player: currentUser(),
	}
}

// WithPlayer sets the name stored with recorded runs.
func (m Model) WithPlayer(name string) Model {
	if name != "" {
		m.player = name
	}
	return m
}

// WithLogger sets the logger used for run bookkeeping.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithBackToMenu lets esc/b leave the session for an enclosing menu.
func (m Model) WithBackToMenu() Model {
	m.allowBack = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World size comes from the tuning config; only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.allowBack && MapKeyToMenuAction(msg) == MenuActionBack {
		m.recordRun(storage.OutcomeQuit)
		m.backToMenu = true
		return m, nil
	}

	id, action, ok := m.keys.Lookup(msg)
	if !ok {
		return m, nil
	}
	if action == core.ActionQuit {
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Press(id, action, time.Now())
	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	wasOver := m.gameState.GameOver
	wasPaused := m.gameState.Paused

	result := m.game.Step(m.held.Frame(now), dt)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		outcome := storage.OutcomeGameOver
		if m.gameState.Phase == core.PhaseVictory {
			outcome = storage.OutcomeVictory
		}
		m.recordRun(outcome)
		m.held.Release()
	case wasOver && !m.gameState.GameOver:
		// Restarted
		m.runSaved = false
		m.held.Release()
	case m.gameState.Paused != wasPaused:
		m.held.Release()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the current run once. Runs that never started are skipped.
func (m *Model) recordRun(outcome string) {
	st := m.gameState
	if m.runSaved || st.Elapsed == 0 {
		return
	}
	m.runSaved = true

	run := storage.Run{
		GameID:   m.game.ID(),
		Players:  1,
		Outcome:  outcome,
		Score:    st.Score,
		Kills:    st.Kills,
		Climbed:  st.Climbed,
		Duration: st.Elapsed,
		Player:   m.player,
	}
	if g, ok := m.game.(mapIdentifier); ok {
		run.MapID = g.MapID()
	}
	if g, ok := m.game.(registry.Configurable); ok {
		run.Players = g.Options().Players
	}

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", id, "game", run.GameID, "outcome", outcome, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tower", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// currentUser names the local player for run history.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}

// Run starts the Bubble Tea program for one session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
