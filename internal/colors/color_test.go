package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Color
	}{
		{"yellow", Yellow},
		{"Blue", Blue},
		{" RED ", Red},
		{"g", Green},
		{"w", White},
		{"k", Black},
		{"black", Black},
		{"p", Purple},
		{"i", Pink},
		{"pink", Pink},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "orange", "x", "bl"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestColorRoundTripsThroughNameAndInitial(t *testing.T) {
	t.Parallel()

	for _, c := range All {
		byName, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, byName)

		byInitial, err := ParseColor(c.Initial())
		require.NoError(t, err)
		assert.Equal(t, c, byInitial)

		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Hex())
	}
}

func TestInvalidColor(t *testing.T) {
	t.Parallel()

	c := Color(42)
	assert.False(t, c.Valid())
	assert.Equal(t, "color(42)", c.String())
	assert.Equal(t, "?", c.Initial())
}

func TestPalette(t *testing.T) {
	t.Parallel()

	t.Run("default has eight colors", func(t *testing.T) {
		p := DefaultPalette()
		assert.Equal(t, 8, p.Len())
		assert.Equal(t, All, p.Colors())
		for _, c := range All {
			assert.True(t, p.Contains(c))
		}
	})

	t.Run("custom palette", func(t *testing.T) {
		p, err := ParsePalette([]string{"red", "g", "blue"})
		require.NoError(t, err)
		assert.Equal(t, 3, p.Len())
		assert.Equal(t, Green, p.At(1))
		assert.False(t, p.Contains(Yellow))
		assert.Equal(t, "red, green, blue", p.String())
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := ParsePalette([]string{"red", "r"})
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewPalette()
		assert.Error(t, err)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParsePalette([]string{"red", "orange"})
		assert.ErrorContains(t, err, "orange")
	})
}
