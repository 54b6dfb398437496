package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/mastermind/cmd/mastermind/shared"
	"github.com/lox/mastermind/internal/config"
	"github.com/lox/mastermind/internal/simulator"
	"github.com/lox/mastermind/internal/statistics"
)

// SimulateCmd runs the solver against many seeded games
type SimulateCmd struct {
	Games   int `short:"n" default:"1000" help:"Number of games to play"`
	Workers int `short:"w" default:"0" help:"Parallel workers (0 uses all CPUs)"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	logger := shared.SetupLogger(os.Stderr, cfg.UI.LogLevel, globals.Debug)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	simCfg, err := c.simulatorConfig(cfg, seed)
	if err != nil {
		return err
	}
	simCfg.Logger = logger

	logger.Info("Starting simulation", "games", c.Games, "seed", seed)

	start := time.Now()
	stats, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printReport(os.Stdout, stats, time.Since(start))
	return nil
}

func (c *SimulateCmd) simulatorConfig(cfg *config.Config, seed int64) (simulator.Config, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return simulator.Config{}, err
	}
	return simulator.Config{
		Games:       c.Games,
		Workers:     c.Workers,
		Seed:        seed,
		Palette:     palette,
		CodeLength:  cfg.Game.CodeLength,
		MaxAttempts: cfg.Game.MaxAttempts,
	}, nil
}

func printReport(w io.Writer, stats *statistics.Statistics, elapsed time.Duration) {
	fmt.Fprintln(w, stats.Summary())
	if stats.Wins > 0 {
		fmt.Fprintf(w, "90th percentile: %.1f guesses\n", stats.Percentile(0.9))
		fmt.Fprintln(w, "Wins by guess count:")
		for attempts, n := range stats.AttemptHistogram {
			if n == 0 {
				continue
			}
			fmt.Fprintf(w, "  %2d: %d\n", attempts, n)
		}
	}
	fmt.Fprintf(w, "Elapsed: %s\n", elapsed.Round(time.Millisecond))
}
