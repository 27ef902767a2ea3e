package attr

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// darkScale darkens a light color when no dark variant is given.
const darkScale = 0.8

type colorMode uint8

const (
	colorAbsent colorMode = iota
	colorSolid
	colorAdaptive
)

// Color is a CSS color, either solid or adaptive with a light and a dark
// variant. The zero value is absent.
//
// Adaptive colors render as light-dark(), which only takes effect when the
// page declares a color-scheme of "light dark".
type Color struct {
	light colorful.Color
	dark  colorful.Color
	mode  colorMode
}

// ParseColor parses a #rgb or #rrggbb color for the named attribute.
func ParseColor(attribute, s string) (Color, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return Color{}, invalid(attribute, s, "color must be #rgb or #rrggbb")
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, invalidCause(attribute, s, err)
	}
	return Color{light: c, mode: colorSolid}, nil
}

// MustColor is like [ParseColor] but panics on invalid input.
func MustColor(s string) Color {
	c, err := ParseColor("color", s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the solid color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{
		light: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		mode:  colorSolid,
	}
}

// LightDark pairs a light and a dark color. Adaptive inputs contribute their
// light variant. An absent dark color is derived from light, and an absent
// light color yields an absent result.
func LightDark(light, dark Color) Color {
	if light.mode == colorAbsent {
		return Color{}
	}
	if dark.mode == colorAbsent {
		return Adaptive(light)
	}
	return Color{light: light.light, dark: dark.light, mode: colorAdaptive}
}

// Adaptive returns light paired with a darker version of itself for dark
// color schemes.
func Adaptive(light Color) Color {
	if light.mode == colorAbsent {
		return Color{}
	}
	c := light.light
	dark := colorful.Color{R: c.R * darkScale, G: c.G * darkScale, B: c.B * darkScale}
	return Color{light: c, dark: dark, mode: colorAdaptive}
}

// IsAdaptive reports whether c has separate light and dark variants.
func (c Color) IsAdaptive() bool { return c.mode == colorAdaptive }

// Light returns the light variant as a solid color. Solid colors return
// themselves.
func (c Color) Light() Color {
	if c.mode == colorAbsent {
		return Color{}
	}
	return Color{light: c.light, mode: colorSolid}
}

// Dark returns the dark variant as a solid color. Solid colors return
// themselves.
func (c Color) Dark() Color {
	switch c.mode {
	case colorAdaptive:
		return Color{light: c.dark, mode: colorSolid}
	case colorSolid:
		return c
	default:
		return Color{}
	}
}

// String returns the CSS text of the color: #rrggbb for solid colors and
// light-dark(#rrggbb, #rrggbb) for adaptive ones.
func (c Color) String() string {
	switch c.mode {
	case colorSolid:
		return c.light.Clamped().Hex()
	case colorAdaptive:
		return "light-dark(" + c.light.Clamped().Hex() + ", " + c.dark.Clamped().Hex() + ")"
	default:
		return ""
	}
}
