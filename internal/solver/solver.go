// Package solver plays Mastermind by elimination: it keeps every code that is
// still consistent with the feedback seen so far and guesses one of them.
package solver

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/game"
)

// ErrNoCandidates means the observed feedback contradicts every possible code,
// which only happens if feedback was recorded against a different secret.
var ErrNoCandidates = errors.New("no consistent candidates left")

// maxCandidates bounds the candidate space so huge custom rule sets fail fast
// instead of exhausting memory.
const maxCandidates = 1 << 20

// Solver narrows down the secret from feedback.
type Solver struct {
	candidates []game.Code
	rng        game.RandSource // nil picks the first candidate
	logger     *log.Logger
}

// New enumerates every code of the given length over the palette. rng may be
// nil for fully deterministic play.
func New(palette colors.Palette, length int, rng game.RandSource, logger *log.Logger) (*Solver, error) {
	if length < 1 {
		return nil, fmt.Errorf("code length must be positive")
	}
	total := 1
	for range length {
		total *= palette.Len()
		if total > maxCandidates {
			return nil, fmt.Errorf("%d colors and %d positions give too many codes to enumerate", palette.Len(), length)
		}
	}

	candidates := make([]game.Code, 0, total)
	code := make(game.Code, length)
	var fill func(pos int)
	fill = func(pos int) {
		if pos == length {
			candidates = append(candidates, code.Clone())
			return
		}
		for i := range palette.Len() {
			code[pos] = palette.At(i)
			fill(pos + 1)
		}
	}
	fill(0)

	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Solver{
		candidates: candidates,
		rng:        rng,
		logger:     logger.WithPrefix("solver"),
	}, nil
}

// Remaining returns how many codes are still consistent
func (s *Solver) Remaining() int { return len(s.candidates) }

// Next proposes the next guess
func (s *Solver) Next() (game.Code, error) {
	if len(s.candidates) == 0 {
		return nil, ErrNoCandidates
	}
	idx := 0
	if s.rng != nil {
		idx = s.rng.IntN(len(s.candidates))
	}
	return s.candidates[idx].Clone(), nil
}

// Observe drops every candidate that would not have produced fb for guess.
func (s *Solver) Observe(guess game.Code, fb game.Feedback) error {
	before := len(s.candidates)
	kept := s.candidates[:0]
	for _, c := range s.candidates {
		got, err := game.Evaluate(c, guess)
		if err != nil {
			return err
		}
		if got == fb {
			kept = append(kept, c)
		}
	}
	s.candidates = kept

	s.logger.Debug("Filtered candidates",
		"guess", guess,
		"exact", fb.Exact,
		"partial", fb.Partial,
		"before", before,
		"after", len(kept))

	if len(kept) == 0 {
		return ErrNoCandidates
	}
	return nil
}

// Replay observes every turn of a history in order.
func (s *Solver) Replay(history []game.Turn) error {
	for _, t := range history {
		if err := s.Observe(t.Guess, t.Feedback); err != nil {
			return err
		}
	}
	return nil
}

// Play drives g until it ends and returns the final outcome.
func (s *Solver) Play(g *game.Game) (game.Outcome, error) {
	for !g.Outcome().Terminal() {
		guess, err := s.Next()
		if err != nil {
			return g.Outcome(), err
		}
		fb, _, err := g.Submit(guess)
		if err != nil {
			return g.Outcome(), err
		}
		if g.Outcome().Terminal() {
			break
		}
		if err := s.Observe(guess, fb); err != nil {
			return g.Outcome(), err
		}
	}
	return g.Outcome(), nil
}
