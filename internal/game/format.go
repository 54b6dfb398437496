package game

import (
	"fmt"
	"strings"
	"time"
)

// EventFormatter renders game events as transcript lines
type EventFormatter struct {
	// ShowInitials renders codes as single letters instead of color names
	ShowInitials bool
}

// FormatCode renders a code in the formatter's style
func (ef EventFormatter) FormatCode(code Code) string {
	if !ef.ShowInitials {
		return code.String()
	}
	var b strings.Builder
	for _, c := range code {
		b.WriteString(strings.ToUpper(c.Initial()))
	}
	return b.String()
}

// FormatTurn formats a single turn, e.g. "#3 [red blue blue green] ●○ (1 exact, 1 partial)"
func (ef EventFormatter) FormatTurn(turn Turn) string {
	return fmt.Sprintf("#%d %s %s (%d exact, %d partial)",
		turn.Attempt, ef.FormatCode(turn.Guess), turn.Feedback, turn.Feedback.Exact, turn.Feedback.Partial)
}

// FormatGameStart formats a game start event
func (ef EventFormatter) FormatGameStart(event GameStartEvent) string {
	return fmt.Sprintf("=== Game %d === %d positions, %d colors, %d attempts",
		event.Round, event.CodeLength, event.Palette.Len(), event.MaxAttempts)
}

// FormatGameEnd formats a game end event, including the revealed secret
func (ef EventFormatter) FormatGameEnd(event GameEndEvent) string {
	switch event.Outcome {
	case Won:
		return fmt.Sprintf("You win!!! Cracked %s in %d %s (%s)",
			ef.FormatCode(event.Secret), event.Attempts, plural(event.Attempts, "guess", "guesses"), event.Duration.Round(time.Second))
	case Lost:
		return fmt.Sprintf("Out of attempts. The secret was %s", ef.FormatCode(event.Secret))
	default:
		return fmt.Sprintf("Game %d ended: %s", event.Round, event.Outcome)
	}
}

// Format dispatches on the event type
func (ef EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case GameStartEvent:
		return ef.FormatGameStart(e)
	case GuessEvent:
		return ef.FormatTurn(e.Turn)
	case GameEndEvent:
		return ef.FormatGameEnd(e)
	default:
		return event.EventType().String()
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
