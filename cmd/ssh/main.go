package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/tomz197/starshooter/internal/config"
	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/client"
)

func main() {
	cfg, err := config.Load(config.GetEnv("STARSHOOTER_CONFIG", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := serve(cfg, log); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func serve(cfg *config.Config, log *zap.Logger) error {
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.Warn("Failed to get working directory", zap.Error(workErr))
	}
	log.Info("SSH config",
		zap.String("host", cfg.SSH.Host),
		zap.String("port", cfg.SSH.Port),
		zap.String("host_key", cfg.SSH.HostKeyPath),
		zap.String("working_dir", workingDir))

	// Sessions end when this context is cancelled on shutdown.
	rootCtx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	g := &gameHandler{cfg: cfg, log: log, rootCtx: rootCtx}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			g.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	log.Info("Starting SSH server", zap.String("addr", s.Addr))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-done:
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}
	log.Info("Shutting down server...")

	// Stop every game first so clients restore their terminals before the
	// connections close.
	cancelSessions()
	g.wait()
	log.Info("All sessions ended")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SSH.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	cfg     *config.Config
	log     *zap.Logger
	rootCtx context.Context
	wg      sync.WaitGroup
}

// wait blocks until every running session has returned.
func (g *gameHandler) wait() {
	g.wg.Wait()
}

// middleware handles SSH sessions and runs the game client.
func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		g.wg.Add(1)
		defer g.wg.Done()

		sessionID := uuid.NewString()
		log := g.log.With(zap.String("user", sess.User()))
		log.Info("New game session",
			zap.String("session", sessionID),
			zap.String("terminal", pty.Term),
			zap.Int("width", pty.Window.Width),
			zap.Int("height", pty.Window.Height))

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		// The session ends on disconnect or on server shutdown.
		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(g.rootCtx, cancel)
		defer stop()

		renderer := lipgloss.NewRenderer(sess, termenv.WithProfile(termenv.ANSI256))
		clientOpts := client.ClientOptions{
			Rules:        g.cfg.Game,
			Logger:       log,
			TermSizeFunc: sizeTracker.getSize,
			Renderer:     renderer,
			Seed:         g.cfg.Game.Seed,
			SessionID:    sessionID,
		}

		c := client.NewClient(bufio.NewReader(sess), sess, clientOpts)
		if err := c.Run(ctx); err != nil {
			log.Warn("Game error", zap.Error(err))
		}

		log.Info("Session ended", zap.String("session", sessionID))
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
