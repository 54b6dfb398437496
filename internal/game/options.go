package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/randutil"
)

const (
	// DefaultCodeLength is the number of positions in a code.
	DefaultCodeLength = 4
	// DefaultMaxAttempts is the number of guesses allowed per game.
	DefaultMaxAttempts = 10
)

// Option configures a Game during creation.
type Option func(*gameConfig)

// gameConfig holds all configuration for creating a game.
type gameConfig struct {
	rng         RandSource
	palette     colors.Palette
	codeLength  int
	maxAttempts int
	secret      Code // first round only; later rounds draw from rng
	clock       quartz.Clock
	logger      *log.Logger
	bus         EventBus
}

func defaultConfig() *gameConfig {
	return &gameConfig{
		palette:     colors.DefaultPalette(),
		codeLength:  DefaultCodeLength,
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithRand sets the randomness secrets are drawn from.
func WithRand(rng RandSource) Option {
	return func(c *gameConfig) {
		c.rng = rng
	}
}

// WithSeed seeds a deterministic generator. Zero is a valid seed here.
func WithSeed(seed int64) Option {
	return func(c *gameConfig) {
		c.rng = randutil.New(seed)
	}
}

// WithPalette restricts secrets and guesses to the given palette.
func WithPalette(p colors.Palette) Option {
	return func(c *gameConfig) {
		c.palette = p
	}
}

// WithCodeLength sets the number of positions in a code.
func WithCodeLength(n int) Option {
	return func(c *gameConfig) {
		c.codeLength = n
	}
}

// WithMaxAttempts sets the number of guesses allowed per game.
func WithMaxAttempts(n int) Option {
	return func(c *gameConfig) {
		c.maxAttempts = n
	}
}

// WithSecret fixes the secret of the first round. Rounds started with
// Restart still draw a fresh secret.
func WithSecret(secret Code) Option {
	return func(c *gameConfig) {
		c.secret = secret.Clone()
	}
}

// WithClock sets the clock used for timestamps and elapsed time.
func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. The game logs under the "game" prefix.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes game events to bus.
func WithEventBus(bus EventBus) Option {
	return func(c *gameConfig) {
		c.bus = bus
	}
}
