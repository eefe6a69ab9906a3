package reticle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Style selects the reticle shape.
type Style int

const (
	StyleCross Style = iota
	StyleDot
)

func (s Style) String() string {
	switch s {
	case StyleCross:
		return "cross"
	case StyleDot:
		return "dot"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case StyleCross, StyleDot:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("unknown crosshair style %d", int(s))
	}
}

func (s *Style) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "cross", "":
		*s = StyleCross
	case "dot":
		*s = StyleDot
	default:
		return fmt.Errorf("unknown crosshair style %q", string(text))
	}
	return nil
}

// Field ranges. Every bound is inclusive.
const (
	MinLineThickness    = 1
	MaxLineThickness    = 10
	MinLength           = 2
	MaxLength           = 50
	MinGap              = 0
	MaxGap              = 20
	MinOutlineThickness = 1
	MaxOutlineThickness = 5
	MinDotSize          = 2
	MaxDotSize          = 50

	DefaultDotSize = 6
)

var ErrOutOfRange = errors.New("value out of range")

// Config is the full description of a reticle. It is a plain value: copies
// never share state and two configs are the same reticle iff they are ==.
type Config struct {
	Color            Color `json:"color"`
	OutlineColor     Color `json:"outline_color"`
	LineThickness    int   `json:"line_thickness"`
	Length           int   `json:"crosshair_length"`
	Gap              int   `json:"crosshair_gap"`
	OutlineEnabled   bool  `json:"outline_enabled"`
	OutlineThickness int   `json:"outline_thickness"`
	Style            Style `json:"crosshair_style"`
	DotSize          int   `json:"dot_size"`
}

// UnmarshalJSON fills the optional crosshair_style and dot_size fields with
// their defaults when they are missing from older files.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	tmp := plain{Style: StyleCross, DotSize: DefaultDotSize}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

// Validate reports the first field outside its documented range.
func (c Config) Validate() error {
	check := func(name string, v, lo, hi int) error {
		if v < lo || v > hi {
			return fmt.Errorf("%s=%d not in [%d,%d]: %w", name, v, lo, hi, ErrOutOfRange)
		}
		return nil
	}
	for _, ch := range []struct {
		name string
		c    Color
	}{{"color", c.Color}, {"outline_color", c.OutlineColor}} {
		if ch.c != ch.c.clamp() {
			return fmt.Errorf("%s channel not in [0,255]: %w", ch.name, ErrOutOfRange)
		}
	}
	if err := check("line_thickness", c.LineThickness, MinLineThickness, MaxLineThickness); err != nil {
		return err
	}
	if err := check("crosshair_length", c.Length, MinLength, MaxLength); err != nil {
		return err
	}
	if err := check("crosshair_gap", c.Gap, MinGap, MaxGap); err != nil {
		return err
	}
	if err := check("outline_thickness", c.OutlineThickness, MinOutlineThickness, MaxOutlineThickness); err != nil {
		return err
	}
	if err := check("dot_size", c.DotSize, MinDotSize, MaxDotSize); err != nil {
		return err
	}
	if c.Style != StyleCross && c.Style != StyleDot {
		return fmt.Errorf("crosshair_style=%d: %w", int(c.Style), ErrOutOfRange)
	}
	return nil
}

// Clamp returns a copy of c with every field pulled into its range.
func (c Config) Clamp() Config {
	c.Color = c.Color.clamp()
	c.OutlineColor = c.OutlineColor.clamp()
	c.LineThickness = clampInt(c.LineThickness, MinLineThickness, MaxLineThickness)
	c.Length = clampInt(c.Length, MinLength, MaxLength)
	c.Gap = clampInt(c.Gap, MinGap, MaxGap)
	c.OutlineThickness = clampInt(c.OutlineThickness, MinOutlineThickness, MaxOutlineThickness)
	c.DotSize = clampInt(c.DotSize, MinDotSize, MaxDotSize)
	if c.Style != StyleDot {
		c.Style = StyleCross
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
