package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/mastermind/internal/colors"
)

func TestParseCode(t *testing.T) {
	t.Parallel()

	palette := colors.DefaultPalette()

	tests := []struct {
		in   string
		want Code
	}{
		{"red blue green yellow", Code{colors.Red, colors.Blue, colors.Green, colors.Yellow}},
		{"r,b,g,y", Code{colors.Red, colors.Blue, colors.Green, colors.Yellow}},
		{"R B  G\tY", Code{colors.Red, colors.Blue, colors.Green, colors.Yellow}},
		{"rbgy", Code{colors.Red, colors.Blue, colors.Green, colors.Yellow}},
		{"kpiw", Code{colors.Black, colors.Purple, colors.Pink, colors.White}},
		{"pink pink black white", Code{colors.Pink, colors.Pink, colors.Black, colors.White}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCode(tt.in, 4, palette)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCodeErrors(t *testing.T) {
	t.Parallel()

	small, err := colors.NewPalette(colors.Red, colors.Blue)
	require.NoError(t, err)

	for _, in := range []string{"", "red blue", "red blue green yellow white", "red orange green yellow", "pink"} {
		_, err := ParseCode(in, 4, colors.DefaultPalette())
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", in)
	}

	_, err = ParseCode("red blue green red", 4, small)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "not in the palette")
}

func TestCode(t *testing.T) {
	t.Parallel()

	a := mustCode(t, "rbgy")
	assert.True(t, a.Equal(mustCode(t, "rbgy")))
	assert.False(t, a.Equal(mustCode(t, "rbgw")))
	assert.False(t, a.Equal(mustCode(t, "rbg")))
	assert.Equal(t, "[red blue green yellow]", a.String())

	b := a.Clone()
	b[0] = colors.Pink
	assert.Equal(t, colors.Red, a[0])
	assert.Nil(t, Code(nil).Clone())
}
