package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/scolor/internal/config"
	"github.com/vovakirdan/scolor/internal/core"
	"github.com/vovakirdan/scolor/internal/games/scolor"
	"github.com/vovakirdan/scolor/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return tui.ErrNotTerminal
	}

	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := scolor.New(cfg, rc, core.NewSystemClock(), logger)
	terminal := tui.NewTerminal(game.Keys(), logger)
	defer terminal.Close()

	logger.Info("starting", "width", rc.ScreenW, "height", rc.ScreenH)
	err = terminal.Run(ctx, func(ctx context.Context) error {
		return scolor.Run(ctx, game, terminal, terminal)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("exiting", "mode", game.Mode())
	return nil
}

// newLogger opens the log destination. An empty path discards all output.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "scolor",
		Level:           level,
	})
	return logger, func() {
		//nolint:errcheck // Nothing useful to do on close failure at exit
		f.Close()
	}, nil
}
