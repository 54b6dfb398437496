// Package simulator plays batches of games with the solver to measure how
// many guesses it needs.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/game"
	"github.com/lox/mastermind/internal/randutil"
	"github.com/lox/mastermind/internal/solver"
	"github.com/lox/mastermind/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Workers     int // 0 uses GOMAXPROCS
	Seed        int64
	Palette     colors.Palette
	CodeLength  int
	MaxAttempts int
	Clock       quartz.Clock
	Logger      *log.Logger
}

// Simulator runs solver games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration, filling in the
// standard rules for anything left unset.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Palette.Len() == 0 {
		config.Palette = colors.DefaultPalette()
	}
	if config.CodeLength == 0 {
		config.CodeLength = game.DefaultCodeLength
	}
	if config.MaxAttempts == 0 {
		config.MaxAttempts = game.DefaultMaxAttempts
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays config.Games games split across workers. Game i always uses seed
// Seed+i, so results don't depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	logger := cfg.Logger.WithPrefix("simulator")

	workers := min(cfg.Workers, max(cfg.Games, 1))
	results := make([]statistics.Statistics, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			for i := w; i < cfg.Games; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playGame(cfg.Seed + int64(i))
				if err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
				results[w].Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for i := range results {
		stats.Merge(&results[i])
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete",
		"games", stats.Games,
		"wins", stats.Wins,
		"mean", fmt.Sprintf("%.2f", stats.Mean()),
		"workers", workers)

	return stats, nil
}

func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	cfg := s.config
	g := game.New(
		game.WithRand(randutil.New(seed)),
		game.WithPalette(cfg.Palette),
		game.WithCodeLength(cfg.CodeLength),
		game.WithMaxAttempts(cfg.MaxAttempts),
		game.WithClock(cfg.Clock),
	)

	// The solver gets its own stream so its choices don't shift the secret.
	sv, err := solver.New(cfg.Palette, cfg.CodeLength, randutil.New(^seed), nil)
	if err != nil {
		return statistics.GameResult{}, err
	}

	outcome, err := sv.Play(g)
	if err != nil {
		return statistics.GameResult{}, err
	}

	return statistics.GameResult{
		Won:      outcome == game.Won,
		Attempts: g.Attempts(),
		Duration: g.Elapsed(),
		Seed:     seed,
	}, nil
}
