package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/randutil"
)

// Outcome is the state of a game
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// Turn is one validated guess and its feedback.
type Turn struct {
	Attempt  int // 1-based
	Guess    Code
	Feedback Feedback
	At       time.Time
}

// Game tracks a single round: the hidden secret, the guesses made so far and
// whether the round has been won or lost. A Game is owned by one caller and
// must not be mutated concurrently.
type Game struct {
	generator   *SecretGenerator
	palette     colors.Palette
	codeLength  int
	maxAttempts int
	clock       quartz.Clock
	logger      *log.Logger
	bus         EventBus

	round     int
	secret    Code
	remaining int
	history   []Turn
	outcome   Outcome
	startedAt time.Time
	endedAt   time.Time
}

// New starts a new game. Without options it plays the standard game: four
// positions, eight colors, ten attempts and a clock-seeded secret.
//
//	// Production
//	g := game.New(game.WithLogger(logger))
//
//	// Testing - deterministic secret
//	g := game.New(game.WithSeed(42))
//	g := game.New(game.WithSecret(game.Code{colors.Red, colors.Blue, colors.Green, colors.Yellow}))
//
// Invalid option values panic.
func New(opts ...Option) *Game {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.codeLength < 1 {
		panic("code length must be positive")
	}
	if cfg.maxAttempts < 1 {
		panic("max attempts must be positive")
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.rng == nil {
		cfg.rng, _ = randutil.NewFromSeedOrTime(0, cfg.clock.Now())
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.secret != nil {
		if err := cfg.secret.Validate(cfg.codeLength, cfg.palette); err != nil {
			panic(fmt.Sprintf("fixed secret: %v", err))
		}
	}

	g := &Game{
		generator:   NewSecretGenerator(cfg.rng, cfg.palette, cfg.codeLength),
		palette:     cfg.palette,
		codeLength:  cfg.codeLength,
		maxAttempts: cfg.maxAttempts,
		clock:       cfg.clock,
		logger:      cfg.logger.WithPrefix("game"),
		bus:         cfg.bus,
	}
	g.start(cfg.secret)
	return g
}

// Restart abandons the current round, whatever its state, and begins a new
// one with a freshly drawn secret.
func (g *Game) Restart() {
	g.start(nil)
}

func (g *Game) start(secret Code) {
	if secret == nil {
		secret = g.generator.Generate()
	}
	g.round++
	g.secret = secret
	g.remaining = g.maxAttempts
	g.history = nil
	g.outcome = InProgress
	g.startedAt = g.clock.Now()
	g.endedAt = time.Time{}

	g.logger.Debug("Starting game", "round", g.round, "length", g.codeLength, "attempts", g.maxAttempts)
	g.publish(NewGameStartEvent(g.round, g.codeLength, g.maxAttempts, g.palette, g.startedAt))
}

// Submit scores a guess and advances the game.
//
// A guess that matches the secret in every position wins immediately. Using
// up the last attempt without a match loses. Submitting to a finished game
// returns ErrInvalidOperation and a malformed guess returns ErrInvalidInput;
// neither changes the game.
func (g *Game) Submit(guess Code) (Feedback, Outcome, error) {
	if g.outcome.Terminal() {
		return Feedback{}, g.outcome, fmt.Errorf("%w: game already %s", ErrInvalidOperation, g.outcome)
	}
	if err := guess.Validate(g.codeLength, g.palette); err != nil {
		return Feedback{}, g.outcome, err
	}

	fb, err := Evaluate(g.secret, guess)
	if err != nil {
		return Feedback{}, g.outcome, err
	}

	now := g.clock.Now()
	turn := Turn{
		Attempt:  len(g.history) + 1,
		Guess:    guess.Clone(),
		Feedback: fb,
		At:       now,
	}
	g.history = append(g.history, turn)
	g.remaining--

	switch {
	case guess.Equal(g.secret):
		g.outcome = Won
	case g.remaining == 0:
		g.outcome = Lost
	}

	g.logger.Debug("Guess scored",
		"round", g.round,
		"attempt", turn.Attempt,
		"guess", turn.Guess,
		"exact", fb.Exact,
		"partial", fb.Partial,
		"remaining", g.remaining)

	g.publish(NewGuessEvent(g.round, turn, g.remaining, g.outcome))

	if g.outcome.Terminal() {
		g.endedAt = now
		g.logger.Info("Game over",
			"round", g.round,
			"outcome", g.outcome,
			"attempts", len(g.history),
			"duration", g.endedAt.Sub(g.startedAt))
		g.publish(NewGameEndEvent(g.round, g.outcome, g.secret.Clone(), len(g.history), g.endedAt.Sub(g.startedAt), now))
	}

	return fb, g.outcome, nil
}

// Reveal returns a copy of the secret. It is meant for finished games or a
// give-up command; calling it doesn't change the game.
func (g *Game) Reveal() Code { return g.secret.Clone() }

// Remaining returns how many guesses are still allowed
func (g *Game) Remaining() int { return g.remaining }

// Attempts returns how many guesses have been made this round
func (g *Game) Attempts() int { return len(g.history) }

// MaxAttempts returns the number of guesses allowed per round
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// CodeLength returns the number of positions in a code
func (g *Game) CodeLength() int { return g.codeLength }

// Palette returns the colors codes are built from
func (g *Game) Palette() colors.Palette { return g.palette }

// Outcome returns the current state of the round
func (g *Game) Outcome() Outcome { return g.outcome }

// Round returns the 1-based number of the current round
func (g *Game) Round() int { return g.round }

// History returns a copy of the turns played this round, oldest first.
func (g *Game) History() []Turn {
	out := make([]Turn, len(g.history))
	for i, t := range g.history {
		t.Guess = t.Guess.Clone()
		out[i] = t
	}
	return out
}

// Elapsed returns how long the round has been running, or how long it took
// once finished.
func (g *Game) Elapsed() time.Duration {
	if g.outcome.Terminal() {
		return g.endedAt.Sub(g.startedAt)
	}
	return g.clock.Since(g.startedAt)
}

func (g *Game) publish(event GameEvent) {
	if g.bus != nil {
		g.bus.Publish(event)
	}
}
