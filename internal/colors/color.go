// Package colors defines the peg colors a code is built from and the palette
// a game draws its secret from.
package colors

import (
	"fmt"
	"strings"
)

// Color is one peg color. Colors only support equality.
type Color int

const (
	Yellow Color = iota
	Blue
	Red
	Green
	White
	Black
	Purple
	Pink
)

// All lists every known color in display order.
var All = []Color{Yellow, Blue, Red, Green, White, Black, Purple, Pink}

var names = [...]string{
	Yellow: "yellow",
	Blue:   "blue",
	Red:    "red",
	Green:  "green",
	White:  "white",
	Black:  "black",
	Purple: "purple",
	Pink:   "pink",
}

// Single-letter forms. Black and Pink don't use their first letter since
// Blue and Purple already claim it.
var initials = [...]string{
	Yellow: "y",
	Blue:   "b",
	Red:    "r",
	Green:  "g",
	White:  "w",
	Black:  "k",
	Purple: "p",
	Pink:   "i",
}

var hexes = [...]string{
	Yellow: "#FDDC36",
	Blue:   "#6084E6",
	Red:    "#FD3536",
	Green:  "#56D558",
	White:  "#FDFDFF",
	Black:  "#343636",
	Purple: "#8660AF",
	Pink:   "#FD89C4",
}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	return c >= Yellow && c <= Pink
}

// String returns the lowercase color name
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return names[c]
}

// Initial returns the single-letter form accepted by ParseColor
func (c Color) Initial() string {
	if !c.Valid() {
		return "?"
	}
	return initials[c]
}

// Hex returns the RGB value used when rendering the color
func (c Color) Hex() string {
	if !c.Valid() {
		return "#808080"
	}
	return hexes[c]
}

// ParseColor parses a color from its name or its single-letter form.
// Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	for _, c := range All {
		if s == names[c] || s == initials[c] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
