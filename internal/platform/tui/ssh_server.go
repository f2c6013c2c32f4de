package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/bouncybet/internal/config"
	"github.com/vovakirdan/bouncybet/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Empty means ~/.bouncybet/host_key, generated on first use
	DBPath      string        // Player database shared by all sessions
	IdleTimeout time.Duration // Idle connections are closed after this long
	TickRate    int           // Simulation rate of each session
	Tuning      config.Tuning
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.bouncybet/bouncybet.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    config.DefaultTickRate,
		Tuning:      config.DefaultTuning(),
	}
}

// SSHServer serves one game per SSH session. The SSH user name is the player.
type SSHServer struct {
	address string
	server  *ssh.Server
	host    *SessionHost
	logger  *log.Logger
}

// NewSSHServer creates a server from cfg. A nil logger writes to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "bouncybet-ssh",
		})
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		address: cfg.Address,
		host:    NewSessionHost(cfg.DBPath, cfg.Tuning, cfg.TickRate, logger),
		logger:  logger,
	}

	// Middleware runs last to first: sessions are logged, then checked for a
	// terminal, then handed to the game.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.startGame),
			activeterm.Middleware(),
			s.logSessions,
		),
	)
	if err != nil {
		s.host.Close()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// resolveHostKey returns the host key location and makes sure its directory
// exists. Wish generates the key itself when the file is missing.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		path = "~/.bouncybet/host_key"
	}
	path, err := storage.ExpandHome(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// startGame builds the game for one SSH session.
func (s *SSHServer) startGame(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	model, release := s.host.Open(sess.Context(), sess.User(), pty.Window.Width, pty.Window.Height)
	go func() {
		<-sess.Context().Done()
		release()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		player := PlayerIDFor(sess.User())
		remote := sess.RemoteAddr().String()
		started := time.Now()

		s.logger.Info("player connected", "player", player, "remote", remote)
		next(sess)
		s.logger.Info("player disconnected",
			"player", player,
			"remote", remote,
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.address, "persistent", s.host.Persistent())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, ssh.ErrServerClosed) {
			s.host.Close()
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting sessions, waits up to 10 seconds for open ones,
// then closes the player database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	return errors.Join(err, s.host.Close())
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.address
}
