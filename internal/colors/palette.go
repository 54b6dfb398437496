package colors

import (
	"fmt"
	"strings"
)

// Palette is an ordered set of distinct colors a secret is drawn from.
type Palette struct {
	colors []Color
	member map[Color]bool
}

// NewPalette builds a palette from distinct, valid colors.
func NewPalette(cs ...Color) (Palette, error) {
	if len(cs) == 0 {
		return Palette{}, fmt.Errorf("palette must contain at least one color")
	}
	p := Palette{
		colors: make([]Color, 0, len(cs)),
		member: make(map[Color]bool, len(cs)),
	}
	for _, c := range cs {
		if !c.Valid() {
			return Palette{}, fmt.Errorf("invalid color %v in palette", c)
		}
		if p.member[c] {
			return Palette{}, fmt.Errorf("duplicate color %s in palette", c)
		}
		p.member[c] = true
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// DefaultPalette returns the standard eight-color palette.
func DefaultPalette() Palette {
	p, err := NewPalette(All...)
	if err != nil {
		panic(err) // All is a fixed, valid list
	}
	return p
}

// ParsePalette builds a palette from color names or initials.
func ParsePalette(names []string) (Palette, error) {
	cs := make([]Color, 0, len(names))
	for _, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return Palette{}, err
		}
		cs = append(cs, c)
	}
	return NewPalette(cs...)
}

// Len returns the number of colors in the palette
func (p Palette) Len() int { return len(p.colors) }

// At returns the i-th color of the palette
func (p Palette) At(i int) Color { return p.colors[i] }

// Contains reports whether c belongs to the palette
func (p Palette) Contains(c Color) bool { return p.member[c] }

// Colors returns a copy of the palette's colors in order
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

func (p Palette) String() string {
	parts := make([]string, len(p.colors))
	for i, c := range p.colors {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
