package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.asteroids/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// SavesDir holds one save file per SSH user.
	SavesDir string

	// GameID selects the registered game to serve.
	GameID string

	TickRate  int
	HoldTicks int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives server events. Nil writes to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.asteroids/scores.db",
		SavesDir:    "~/.asteroids/saves",
		GameID:      "asteroids",
		TickRate:    60,
		HoldTicks:   DefaultHoldTicks,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one game per SSH session. Each user has a save file of
// their own, and a user can only play in one session at a time.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu       sync.Mutex
	sessions map[string]playSession // by SSH session ID
	playing  map[string]bool        // SSH users with an open game

	handlers sync.WaitGroup // session handlers still running, saves included
}

type playSession struct {
	user string
	game registry.Game
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "asteroids-ssh",
		})
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("unknown game %q", cfg.GameID)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		logger:   logger,
		sessions: make(map[string]playSession),
		playing:  make(map[string]bool),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".asteroids", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middleware runs last to first: log, then shut the game down, then play.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.shutdownMiddleware,
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

// saveName turns an SSH user name into a safe file name.
func saveName(user string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, user)
	if name == "" {
		name = "anonymous"
	}
	return name + ".yaml"
}

// newGame creates the game for user, backed by the user's save file.
func (s *SSHServer) newGame(user string) (registry.Game, error) {
	save, err := storage.OpenSnapshot(filepath.Join(s.config.SavesDir, saveName(user)))
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("user", user)
	return registry.Create(s.config.GameID, registry.Env{
		Logger:   logger,
		Audio:    audio.NewLogPlayer(logger),
		Snapshot: save,
	})
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	user := sshSession.User()
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", user)
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing[user] {
		s.logger.Warn("user already playing", "user", user)
		wish.Println(sshSession, "You are already playing in another session.")
		return nil, nil
	}

	game, err := s.newGame(user)
	if err != nil {
		s.logger.Error("cannot create game", "user", user, "error", err)
		return nil, nil
	}
	s.sessions[sshSession.Context().SessionID()] = playSession{user: user, game: game}
	s.playing[user] = true

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	return NewModel(game, s.store, cfg, s.config.HoldTicks).WithPlayer(user), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// shutdownMiddleware saves the user's game once the session is over.
func (s *SSHServer) shutdownMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.handlers.Add(1)
		defer s.handlers.Done()

		next(sshSession)

		id := sshSession.Context().SessionID()
		s.mu.Lock()
		ps, ok := s.sessions[id]
		if ok {
			delete(s.sessions, id)
			delete(s.playing, ps.user)
		}
		s.mu.Unlock()
		if !ok {
			return
		}

		if pg, ok := ps.game.(registry.Persistent); ok {
			if err := pg.Shutdown(); err != nil {
				s.logger.Error("cannot save game", "user", ps.user, "error", err)
			}
		}
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

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Sessions still open are saved by
// their middleware as the server closes them, and the score store stays open
// until every handler has returned.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	if s.server != nil {
		if err = s.server.Shutdown(ctx); err != nil {
			// Drop sessions that outlived the grace period. Their handlers
			// still run the save on the way out.
			err = errors.Join(err, s.server.Close())
		}
	}

	wait, cancelWait := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelWait()
	err = errors.Join(err, s.waitSessions(wait))
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// waitSessions blocks until every session handler has returned.
func (s *SSHServer) waitSessions(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.handlers.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sessions still running: %w", ctx.Err())
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
