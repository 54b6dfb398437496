package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mastermind/internal/colors"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRun(t *testing.T) {
	t.Parallel()

	sim := New(Config{Games: 40, Workers: 4, Seed: 7, Clock: quartz.NewMock(t), Logger: quietLogger()})
	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	require.NoError(t, stats.Validate())
	assert.Equal(t, 40, stats.Games)
	assert.Greater(t, stats.WinRate(), 0.9)
	assert.LessOrEqual(t, stats.WorstWin, 10)
	assert.Zero(t, stats.TotalDuration, "mock clock never advances")
}

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	t.Parallel()

	one, err := New(Config{Games: 12, Workers: 1, Seed: 3, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	many, err := New(Config{Games: 12, Workers: 5, Seed: 3, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, one.Wins, many.Wins)
	assert.Equal(t, one.SumAttempts, many.SumAttempts)
	assert.Equal(t, one.AttemptHistogram, many.AttemptHistogram)
}

func TestRunCustomRules(t *testing.T) {
	t.Parallel()

	palette, err := colors.NewPalette(colors.Red, colors.Blue, colors.Green)
	require.NoError(t, err)

	stats, err := New(Config{
		Games:       10,
		Seed:        1,
		Palette:     palette,
		CodeLength:  3,
		MaxAttempts: 8,
		Logger:      quietLogger(),
	}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Wins)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Games: 100, Seed: 1, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsHugeRules(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Games: 1, CodeLength: 9, Logger: quietLogger()}).Run(context.Background())
	assert.Error(t, err)
}
