package game

import "github.com/lox/mastermind/internal/colors"

// RandSource is the randomness a SecretGenerator draws from. *rand.Rand from
// math/rand/v2 satisfies it, as does randutil.Sequence for scripted tests.
type RandSource interface {
	IntN(n int) int
}

// SecretGenerator draws secrets uniformly from a palette.
type SecretGenerator struct {
	rng     RandSource
	palette colors.Palette
	length  int
}

// NewSecretGenerator creates a generator. It panics on a nil source, an empty
// palette or a non-positive length, all of which are programming errors.
func NewSecretGenerator(rng RandSource, palette colors.Palette, length int) *SecretGenerator {
	if rng == nil {
		panic("rng is required for secret generation")
	}
	if palette.Len() == 0 {
		panic("palette must not be empty")
	}
	if length < 1 {
		panic("code length must be positive")
	}
	return &SecretGenerator{rng: rng, palette: palette, length: length}
}

// Generate draws each position independently, so colors may repeat.
func (g *SecretGenerator) Generate() Code {
	code := make(Code, g.length)
	for i := range code {
		code[i] = g.palette.At(g.rng.IntN(g.palette.Len()))
	}
	return code
}
