package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/game"
)

const (
	pegSymbol    = "●"
	emptySymbol  = "·"
	hiddenSymbol = "?"
)

// renderPeg renders one code position in its own color
func renderPeg(c colors.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(pegSymbol)
}

// renderCode renders a code as colored pegs, optionally followed by initials
// for terminals without color.
func renderCode(code game.Code, initials bool) string {
	parts := make([]string, len(code))
	for i, c := range code {
		parts[i] = renderPeg(c)
		if initials {
			parts[i] += strings.ToUpper(c.Initial())
		}
	}
	return strings.Join(parts, " ")
}

// renderFeedback renders exact pegs before partial ones, padded to the code
// length so rows line up.
func renderFeedback(fb game.Feedback, length int) string {
	var b strings.Builder
	for _, p := range fb.Pegs() {
		if p == game.Exact {
			b.WriteString(ExactPegStyle.Render("●"))
		} else {
			b.WriteString(PartialPegStyle.Render("○"))
		}
	}
	for range length - fb.Total() {
		b.WriteString(InfoStyle.Render(emptySymbol))
	}
	return b.String()
}

func placeholderRow(length int, symbol string) string {
	parts := make([]string, length)
	for i := range parts {
		parts[i] = symbol
	}
	return strings.Join(parts, " ")
}

// renderBoard renders the secret row followed by one row per attempt, the
// played ones filled in.
func renderBoard(g *game.Game, revealed, initials bool) string {
	var b strings.Builder
	length := g.CodeLength()

	secret := InfoStyle.Render(placeholderRow(length, hiddenSymbol))
	if revealed || g.Outcome().Terminal() {
		secret = renderCode(g.Reveal(), initials)
	}
	b.WriteString(fmt.Sprintf("Secret  %s\n\n", secret))

	history := g.History()
	for i := range g.MaxAttempts() {
		if i < len(history) {
			t := history[i]
			b.WriteString(fmt.Sprintf("%2d  %s  %s\n", t.Attempt, renderCode(t.Guess, initials), renderFeedback(t.Feedback, length)))
			continue
		}
		row := placeholderRow(length, emptySymbol)
		if i == len(history) && !g.Outcome().Terminal() && !revealed {
			row = WarningStyle.Render(row) + "  <"
		} else {
			row = InfoStyle.Render(row)
		}
		b.WriteString(fmt.Sprintf("%2d  %s\n", i+1, row))
	}
	return strings.TrimRight(b.String(), "\n")
}
