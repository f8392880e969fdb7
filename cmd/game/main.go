package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/starshooter/internal/config"
	"github.com/tomz197/starshooter/internal/loop"
	"github.com/tomz197/starshooter/internal/loop/client"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetEnv("STARSHOOTER_CONFIG", ""))
	if err != nil {
		return err
	}

	// The terminal belongs to the game; logs only go to a file when asked.
	log := zap.NewNop()
	if cfg.Logging.File != "" {
		log, err = config.NewLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
	}
	defer func() { _ = log.Sync() }()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Rules:  cfg.Game,
		Logger: log,
		Seed:   cfg.RNGSeed(),
	})
}
