package main

import (
	"fmt"
	"time"

	"github.com/lox/mastermind/cmd/mastermind/shared"
	"github.com/lox/mastermind/internal/game"
	"github.com/lox/mastermind/internal/randutil"
	"github.com/lox/mastermind/internal/tui"
)

// PlayCmd starts an interactive game
type PlayCmd struct {
	Color    string `enum:"auto,always,never" default:"auto" help:"Color output: auto, always or never"`
	Initials bool   `help:"Show color letters next to pegs"`
	LogFile  string `help:"Debug log file (defaults to the config's ui.log_file)"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}

	logFile := cfg.UI.LogFile
	if c.LogFile != "" {
		logFile = c.LogFile
	}
	logger, f, err := shared.SetupFileLogger(logFile, cfg.UI.LogLevel, globals.Debug)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	colorMode := cfg.UI.Color
	if c.Color != "auto" {
		colorMode = c.Color
	}
	tui.SetColorMode(colorMode)

	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}
	rng, seed := randutil.NewFromSeedOrTime(cfg.Game.Seed, time.Now())
	opts = append(opts, game.WithRand(rng))

	logger.Info("Starting interactive game",
		"seed", seed,
		"length", cfg.Game.CodeLength,
		"attempts", cfg.Game.MaxAttempts,
		"palette", cfg.Game.Palette)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	model := tui.NewTUIModel(logger, tui.Options{
		GameOptions: opts,
		Initials:    c.Initials || cfg.UI.Initials,
	})
	if err := tui.Run(ctx, model); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}

	stats := model.Stats()
	logger.Info("Session finished", "games", stats.Games, "wins", stats.Wins)
	if stats.Games > 0 {
		fmt.Println(stats.Summary())
	}
	return nil
}
