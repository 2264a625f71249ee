package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tower-climber/internal/core"
	"github.com/vovakirdan/tower-climber/internal/registry"
	"github.com/vovakirdan/tower-climber/internal/storage"
	"github.com/vovakirdan/tower-climber/internal/tower/level"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tower/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// MapsDir is an optional directory of extra maps.
	MapsDir string

	// TickRate is the frame rate of every session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives connection events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tower/scores.db",
		TickRate:    50,
		IdleTimeout: 30 * time.Minute,
	}
}

// CreateGame instantiates the variant chosen in sel. The map and player
// count come from sel; everything else from base.
func CreateGame(sel Selection, base registry.SessionOptions) (registry.Game, error) {
	game, err := registry.Create(sel.Variant.GameID())
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		opts := base
		opts.Map = sel.MapID
		opts.Players = sel.Players
		if err := c.Configure(opts); err != nil {
			return nil, fmt.Errorf("cannot configure %s: %w", game.ID(), err)
		}
	}
	return game, nil
}

// SSHServer wraps a Wish SSH server. Every connection gets its own setup
// menu and game; only the store is shared.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	catalog *level.Catalog
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tower-ssh",
		})
	}

	catalog, err := level.NewCatalog(cfg.MapsDir)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		catalog: catalog,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tower", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	base := registry.SessionOptions{MapsDir: s.config.MapsDir, Logger: s.logger}
	model := NewSessionModel(s.store, s.catalog, cfg, sshSession.User(), base)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.Shutdown() //nolint:errcheck // already failing
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionView int

const (
	viewSetup sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: setup -> game -> setup, with
// the scoreboard reachable from setup. This is the top-level model used for
// SSH sessions.
type SessionModel struct {
	store     *storage.Store
	catalog   *level.Catalog
	config    core.RuntimeConfig
	username  string
	logger    *log.Logger
	base      registry.SessionOptions
	view      sessionView
	last      Selection
	setup     SetupModel
	gameModel Model
	scores    ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model. Games started from it use
// base for everything the setup menu does not choose.
func NewSessionModel(store *storage.Store, catalog *level.Catalog, cfg core.RuntimeConfig, username string, base registry.SessionOptions) SessionModel {
	if base.Logger == nil {
		base.Logger = log.New(io.Discard)
	}
	base.Logger = base.Logger.With("user", username)

	last := Selection{Players: 1}
	return SessionModel{
		store:    store,
		catalog:  catalog,
		config:   cfg,
		username: username,
		logger:   base.Logger,
		base:     base,
		last:     last,
		setup:    NewSetupModel(catalog, cfg, last),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateSetup(msg)
	}
}

// toSetup returns to a fresh setup menu remembering the last selection.
func (m SessionModel) toSetup() (tea.Model, tea.Cmd) {
	m.view = viewSetup
	m.setup = NewSetupModel(m.catalog, m.config, m.last)
	return m, m.setup.Init()
}

// updateSetup handles updates when in the setup menu.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	if setup, ok := next.(SetupModel); ok {
		m.setup = setup
	}

	switch {
	case m.setup.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.setup.WantsScoreboard():
		m.view = viewScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, false)
		return m, m.scores.Init()

	case m.setup.Selected() != nil:
		sel := *m.setup.Selected()
		m.last = sel
		game, err := CreateGame(sel, m.base)
		if err != nil {
			m.logger.Error("cannot start game", "error", err)
			return m.toSetup()
		}

		m.config.Seed = time.Now().UnixNano()
		m.gameModel = NewModel(game, m.store, m.config).
			WithPlayer(m.username).
			WithLogger(m.logger).
			WithBackToMenu()
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(Model); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.toSetup()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toSetup()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.setup.View()
	}
}
