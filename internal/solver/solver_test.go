package solver

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/game"
	"github.com/lox/mastermind/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func mustCode(t *testing.T, s string) game.Code {
	t.Helper()
	code, err := game.ParseCode(s, len(s), colors.DefaultPalette())
	require.NoError(t, err)
	return code
}

func TestNewEnumeratesAllCodes(t *testing.T) {
	t.Parallel()

	s, err := New(colors.DefaultPalette(), 4, nil, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 4096, s.Remaining())

	first, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, mustCode(t, "yyyy"), first)
}

func TestNewRejectsHugeSpaces(t *testing.T) {
	t.Parallel()

	_, err := New(colors.DefaultPalette(), 8, nil, quietLogger())
	assert.Error(t, err)

	_, err = New(colors.DefaultPalette(), 0, nil, quietLogger())
	assert.Error(t, err)
}

func TestObserveKeepsSecret(t *testing.T) {
	t.Parallel()

	secret := mustCode(t, "rrbg")
	s, err := New(colors.DefaultPalette(), 4, nil, quietLogger())
	require.NoError(t, err)

	for _, guess := range []string{"rbbb", "gggg", "rrrr"} {
		g := mustCode(t, guess)
		fb, err := game.Evaluate(secret, g)
		require.NoError(t, err)
		require.NoError(t, s.Observe(g, fb))
	}

	assert.Less(t, s.Remaining(), 4096)

	found := false
	for range s.Remaining() {
		next, err := s.Next()
		require.NoError(t, err)
		fb, err := game.Evaluate(secret, next)
		require.NoError(t, err)
		if fb.Solved(4) {
			found = true
			break
		}
		require.NoError(t, s.Observe(next, fb))
	}
	assert.True(t, found)
}

func TestObserveContradiction(t *testing.T) {
	t.Parallel()

	s, err := New(colors.DefaultPalette(), 4, nil, quietLogger())
	require.NoError(t, err)

	require.NoError(t, s.Observe(mustCode(t, "rrrr"), game.Feedback{Exact: 4}))
	assert.Equal(t, 1, s.Remaining())

	err = s.Observe(mustCode(t, "rrrr"), game.Feedback{})
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestReplay(t *testing.T) {
	t.Parallel()

	g := game.New(game.WithSecret(mustCode(t, "pwik")))
	for _, guess := range []string{"yyyy", "pppp", "wiwi"} {
		_, _, err := g.Submit(mustCode(t, guess))
		require.NoError(t, err)
	}

	s, err := New(colors.DefaultPalette(), 4, nil, quietLogger())
	require.NoError(t, err)
	require.NoError(t, s.Replay(g.History()))

	next, err := s.Next()
	require.NoError(t, err)
	for _, turn := range g.History() {
		fb, err := game.Evaluate(next, turn.Guess)
		require.NoError(t, err)
		assert.Equal(t, turn.Feedback, fb, "suggestion must be consistent with %v", turn.Guess)
	}
}

func TestPlayWinsStandardGames(t *testing.T) {
	t.Parallel()

	total := 0
	for seed := int64(1); seed <= 20; seed++ {
		g := game.New(game.WithSeed(seed), game.WithMaxAttempts(16))
		s, err := New(g.Palette(), g.CodeLength(), randutil.New(seed), quietLogger())
		require.NoError(t, err)

		outcome, err := s.Play(g)
		require.NoError(t, err)
		assert.Equal(t, game.Won, outcome, "seed %d secret %v", seed, g.Reveal())
		assert.True(t, g.History()[g.Attempts()-1].Guess.Equal(g.Reveal()))
		total += g.Attempts()
	}

	// Random consistent guessing averages around six guesses on the standard board.
	assert.Less(t, float64(total)/20, 8.0)
}
