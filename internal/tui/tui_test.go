package tui

import (
	"io"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/game"
)

func TestMain(m *testing.M) {
	// Plain output keeps assertions free of escape codes
	SetColorMode("never")
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, initials bool) *TUIModel {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	secret, err := game.ParseCode("rbgy", 4, colors.DefaultPalette())
	require.NoError(t, err)
	return NewTUIModel(logger, Options{
		GameOptions: []game.Option{game.WithSecret(secret), game.WithSeed(1)},
		Initials:    initials,
		TestMode:    true,
	})
}

func lastLog(m *TUIModel) string {
	lines := m.GetCapturedLog()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func logContains(m *TUIModel, substr string) bool {
	for _, line := range m.GetCapturedLog() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestTUITestMode(t *testing.T) {
	m := newTestModel(t, false)

	assert.True(t, m.IsTestMode())
	require.Len(t, m.GetCapturedLog(), 1)
	assert.Equal(t, "=== Game 1 === 4 positions, 8 colors, 10 attempts", m.GetCapturedLog()[0])
}

func TestGuessFlow(t *testing.T) {
	m := newTestModel(t, false)

	assert.Nil(t, m.HandleInput("red yellow blue white"))
	assert.Equal(t, "#1 [red yellow blue white] ●○○ (1 exact, 2 partial)", lastLog(m))
	assert.Equal(t, 9, m.Game().Remaining())

	assert.Nil(t, m.HandleInput("rbgy"))
	assert.True(t, logContains(m, "You win!!!"))
	assert.Contains(t, lastLog(m), "Play again?")
	assert.Equal(t, game.Won, m.Game().Outcome())
	assert.Equal(t, 1, m.Stats().Wins)

	m.HandleInput("wwww")
	assert.Contains(t, lastLog(m), "This game is over")
	assert.Equal(t, 2, m.Game().Attempts())
}

func TestLossFlow(t *testing.T) {
	m := newTestModel(t, false)

	for range 10 {
		m.HandleInput("wwww")
	}
	assert.Equal(t, game.Lost, m.Game().Outcome())
	assert.True(t, logContains(m, "Out of attempts. The secret was [red blue green yellow]"))
	assert.Equal(t, 1, m.Stats().Losses)
}

func TestInvalidGuess(t *testing.T) {
	m := newTestModel(t, false)

	m.HandleInput("red orange green yellow")
	assert.Contains(t, lastLog(m), "Invalid guess")

	m.HandleInput("rbg")
	assert.Contains(t, lastLog(m), "Invalid guess")

	assert.Equal(t, 10, m.Game().Remaining())
	assert.Empty(t, m.Game().History())
}

func TestNewGameCommand(t *testing.T) {
	m := newTestModel(t, false)

	m.HandleInput("wwww")
	m.HandleInput("new")

	assert.Equal(t, 2, m.Game().Round())
	assert.Equal(t, 10, m.Game().Remaining())
	assert.Equal(t, "=== Game 2 === 4 positions, 8 colors, 10 attempts", lastLog(m))
}

func TestHintCommand(t *testing.T) {
	m := newTestModel(t, true)

	m.HandleInput("hint")
	assert.Equal(t, "Hint: 4096 codes still fit, try YYYY", lastLog(m))

	m.HandleInput("rybw")
	m.HandleInput("hint")
	assert.Contains(t, lastLog(m), "Hint: ")
	assert.NotContains(t, lastLog(m), "4096")
	assert.Equal(t, 9, m.Game().Remaining(), "hints are free")
}

func TestRevealCommand(t *testing.T) {
	m := newTestModel(t, false)

	m.HandleInput("wwww")
	m.HandleInput("reveal")
	assert.True(t, logContains(m, "You gave up. The secret was [red blue green yellow]"))
	assert.Equal(t, 1, m.Stats().Losses)
	assert.Equal(t, game.InProgress, m.Game().Outcome(), "giving up doesn't change the game")

	m.HandleInput("reveal")
	assert.Equal(t, 1, m.Stats().Games, "giving up twice counts once")

	m.HandleInput("rbgy")
	assert.Contains(t, lastLog(m), "You gave up on this game")

	m.HandleInput("hint")
	assert.Contains(t, lastLog(m), "No game in progress")

	m.HandleInput("new")
	m.HandleInput("hint")
	assert.Contains(t, lastLog(m), "Hint: 4096 codes")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, false)

	assert.NotNil(t, m.HandleInput("quit"))
	assert.Equal(t, "", m.View())
}

func TestKeyHandling(t *testing.T) {
	m := newTestModel(t, false)

	m.actionInput.SetValue("rbgy")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.Won, m.Game().Outcome())
	assert.Equal(t, "", m.actionInput.Value())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focusedPane)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focusedPane)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestView(t *testing.T) {
	m := newTestModel(t, true)

	assert.Equal(t, "Loading...", m.View())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	view := m.View()
	assert.Contains(t, view, "Mastermind • Game 1")
	assert.Contains(t, view, "Attempts left: 10/10")
	assert.Contains(t, view, "Secret  ? ? ? ?")
	assert.NotContains(t, view, "●R ●B ●G ●Y")

	m.HandleInput("rybw")
	view = m.View()
	assert.Contains(t, view, "Attempts left: 9/10")
	assert.Contains(t, view, "●R ●Y ●B ●W")

	m.HandleInput("rbgy")
	view = m.View()
	assert.Contains(t, view, "Status: won")
	assert.Contains(t, view, "Secret  ●R ●B ●G ●Y")
	assert.Contains(t, view, "Played: 1  Won: 1  Lost: 0")
}

func TestColorProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, ColorProfile("never"))
	assert.Equal(t, termenv.TrueColor, ColorProfile("always"))
}
