package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// reservedRows are the terminal rows outside the field: the HUD above it and
// the help line below it.
const reservedRows = invaders.HUDRows + 1

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The field fills the terminal unless the config fixes its size
	width, height := fieldSize()
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := invaders.New(runtime, cfg, invaders.WithLogger(logger))
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("leaderboard unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	fieldW, fieldH := game.Field()
	logger.Info("starting",
		"field", fmt.Sprintf("%dx%d", fieldW, fieldH),
		"fps", flagFPS,
		"session", sessionID(store))

	return tui.Run(game, store, tui.Options{
		TickRate: flagFPS,
		Release:  flagRelease,
		Logger:   logger,
	})
}

// fieldSize returns the terminal area available to the field.
func fieldSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height - reservedRows
}

func sessionID(store *storage.Store) string {
	if store == nil {
		return ""
	}
	return store.Session()
}

// newLogger builds the process logger. The terminal belongs to the game, so
// logs only go to a file; without one they are discarded.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           lvl,
	})
	return logger, closer, nil
}
