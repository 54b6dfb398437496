package game

import (
	"fmt"
	"strings"

	"github.com/lox/mastermind/internal/colors"
)

// Code is an ordered sequence of colors. Both the secret and every guess are
// codes of the game's code length.
type Code []colors.Color

// Equal reports whether both codes have the same colors in the same positions
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (c Code) Clone() Code {
	if c == nil {
		return nil
	}
	out := make(Code, len(c))
	copy(out, c)
	return out
}

func (c Code) String() string {
	parts := make([]string, len(c))
	for i, col := range c {
		parts[i] = col.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks the code against a required length and palette.
func (c Code) Validate(length int, palette colors.Palette) error {
	if len(c) != length {
		return fmt.Errorf("%w: code has %d colors, want %d", ErrInvalidInput, len(c), length)
	}
	for i, col := range c {
		if !palette.Contains(col) {
			return fmt.Errorf("%w: color %s at position %d is not in the palette", ErrInvalidInput, col, i+1)
		}
	}
	return nil
}

// ParseCode parses a code from color names or initials separated by spaces
// or commas, e.g. "red blue green yellow" or "r,b,g,y". A single token with
// no separators is read as a run of initials ("rbgy").
func ParseCode(s string, length int, palette colors.Palette) (Code, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 1 && len(fields[0]) == length && length > 1 {
		if _, err := colors.ParseColor(fields[0]); err != nil {
			fields = strings.Split(fields[0], "")
		}
	}

	code := make(Code, 0, len(fields))
	for _, f := range fields {
		col, err := colors.ParseColor(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		code = append(code, col)
	}
	if err := code.Validate(length, palette); err != nil {
		return nil, err
	}
	return code, nil
}
