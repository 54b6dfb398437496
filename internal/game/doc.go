// Package game implements the core Mastermind rules: scoring a guess against
// the secret and moving a round from in progress to won or lost.
//
// The main type is Game, which owns one round at a time: the hidden secret,
// the remaining attempts and the history of scored guesses.
//
// # Basic Usage
//
//	g := game.New()
//	fb, outcome, err := g.Submit(game.Code{colors.Red, colors.Blue, colors.Green, colors.Yellow})
//	if outcome.Terminal() {
//	    secret := g.Reveal()
//	}
//	g.Restart()
//
// # Scoring
//
// Evaluate is a pure function. Exact matches are counted and removed from the
// pool of secret colors before partial matches are looked up, and the pool is
// a per-color counter so duplicated colors in either code are never counted
// twice.
//
// # Deterministic Testing
//
// Secrets are drawn from an injected RandSource:
//
//	g := game.New(game.WithSeed(42))
//	g := game.New(game.WithRand(randutil.NewSequence(2, 1, 3, 0)))
//	g := game.New(game.WithSecret(code), game.WithClock(quartz.NewMock(t)))
package game
