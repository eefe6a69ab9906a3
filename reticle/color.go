package reticle

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color as stored in the settings files.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	A int `json:"a"`
}

// NRGBA converts c to a standard library color, clamping out-of-range
// channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampInt(c.R, 0, 255)),
		G: uint8(clampInt(c.G, 0, 255)),
		B: uint8(clampInt(c.B, 0, 255)),
		A: uint8(clampInt(c.A, 0, 255)),
	}
}

// RGBA is NRGBA with alpha premultiplied.
func (c Color) RGBA() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

// Hex formats the color channels as #RRGGBB. Alpha is not included.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

func (c Color) clamp() Color {
	return Color{
		R: clampInt(c.R, 0, 255),
		G: clampInt(c.G, 0, 255),
		B: clampInt(c.B, 0, 255),
		A: clampInt(c.A, 0, 255),
	}
}

// ParseHex parses #RRGGBB (the leading # is optional). The result is opaque.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF), A: 255}, nil
}

// NamedColor is an entry of the color palette offered by the settings surface.
type NamedColor struct {
	Name string
	Hex  string
}

var palette = []NamedColor{
	{Name: "Green", Hex: "#00FF00"},
	{Name: "Red", Hex: "#FF0000"},
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Cyan", Hex: "#00FFFF"},
	{Name: "Magenta", Hex: "#FF00FF"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "Pink", Hex: "#FF69B4"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "Black", Hex: "#000000"},
}

// Palette returns a copy of the named color palette in display order.
func Palette() []NamedColor {
	out := make([]NamedColor, len(palette))
	copy(out, palette)
	return out
}

// PaletteName returns the palette name matching c's RGB channels, or "" if
// c is not a palette color.
func PaletteName(c Color) string {
	hex := c.Hex()
	for _, nc := range palette {
		if nc.Hex == hex {
			return nc.Name
		}
	}
	return ""
}

// StepPalette moves c by delta positions through the palette, wrapping at
// both ends. A color that is not in the palette starts from the first entry.
// Alpha is preserved.
func StepPalette(c Color, delta int) Color {
	idx := -1
	hex := c.Hex()
	for i, nc := range palette {
		if nc.Hex == hex {
			idx = i
			break
		}
	}
	n := len(palette)
	if idx < 0 {
		idx = 0
		if delta > 0 {
			delta--
		}
	}
	next := ((idx+delta)%n + n) % n
	out, _ := ParseHex(palette[next].Hex)
	out.A = c.A
	return out
}
