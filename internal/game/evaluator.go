package game

import (
	"fmt"
	"strings"

	"github.com/lox/mastermind/internal/colors"
)

// Peg is one unit of feedback
type Peg int

const (
	// Exact marks a correct color in the correct position.
	Exact Peg = iota
	// Partial marks a correct color in a different position, counted only
	// against secret colors that were not already matched exactly.
	Partial
)

func (p Peg) String() string {
	switch p {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

// Feedback is the multiset of pegs produced by scoring one guess.
type Feedback struct {
	Exact   int
	Partial int
}

// Total returns the number of pegs
func (f Feedback) Total() int { return f.Exact + f.Partial }

// Solved reports whether every position of a code of the given length matched
func (f Feedback) Solved(length int) bool { return f.Exact == length }

// Pegs lists the pegs with all Exact pegs before Partial ones
func (f Feedback) Pegs() []Peg {
	pegs := make([]Peg, 0, f.Total())
	for range f.Exact {
		pegs = append(pegs, Exact)
	}
	for range f.Partial {
		pegs = append(pegs, Partial)
	}
	return pegs
}

func (f Feedback) String() string {
	if f.Total() == 0 {
		return "-"
	}
	return strings.Repeat("●", f.Exact) + strings.Repeat("○", f.Partial)
}

// Evaluate scores guess against secret.
//
// The exact pass runs to completion before any partial match is counted:
// every exact hit takes its color instance out of the pool, and each partial
// match then consumes one remaining instance. A color therefore never earns
// more pegs than it has instances in the secret.
func Evaluate(secret, guess Code) (Feedback, error) {
	if len(secret) == 0 || len(secret) != len(guess) {
		return Feedback{}, fmt.Errorf("%w: guess has %d colors, secret has %d", ErrInvalidInput, len(guess), len(secret))
	}

	var fb Feedback
	exact := make([]bool, len(secret))
	pool := make(map[colors.Color]int, len(secret))

	for i := range secret {
		if guess[i] == secret[i] {
			fb.Exact++
			exact[i] = true
		} else {
			pool[secret[i]]++
		}
	}

	for i := range guess {
		if exact[i] {
			continue
		}
		if pool[guess[i]] > 0 {
			fb.Partial++
			pool[guess[i]]--
		}
	}

	return fb, nil
}
