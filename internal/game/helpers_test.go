package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/mastermind/internal/colors"
)

// mustCode builds a code from color initials, e.g. "rbgy".
func mustCode(t *testing.T, initials string) Code {
	t.Helper()
	code, err := ParseCode(initials, len(initials), colors.DefaultPalette())
	require.NoError(t, err)
	return code
}

// recorder collects published events
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(event GameEvent) { r.events = append(r.events, event) }

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}
