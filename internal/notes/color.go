package notes

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB value. Colors compare with ==.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{0xff, 0xff, 0xff}
	Black = Color{0x00, 0x00, 0x00}
)

// ParseColor accepts #rrggbb or #rgb, with or without the leading #.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseColor is ParseColor for package-level literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Contrast returns Black or White, whichever is more legible on c.
func (c Color) Contrast() Color {
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return Black
	}
	return White
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
