// Package render holds the pixel targets and 2D primitives the wireframe
// renderer draws through.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	Black  = RGB(0, 0, 0)
	White  = RGB(255, 255, 255)
	Red    = RGB(255, 0, 0)
	Green  = RGB(0, 255, 0)
	Blue   = RGB(0, 0, 255)
	Yellow = RGB(255, 255, 0)
	Cyan   = RGB(0, 255, 255)
)

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

// Opaque reports whether c fully covers what is below it.
func (c Color) Opaque() bool { return c.A == 0xFF }

// Over composites c over dst. The result is opaque.
func (c Color) Over(dst Color) Color {
	if c.A == 0xFF {
		return c
	}
	a := uint32(c.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xFF}
}

// NRGBA converts c for image and gg consumers.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor accepts #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("render: color %q: missing '#'", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("render: color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("render: color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// UnmarshalText lets colors appear as strings in YAML files.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
