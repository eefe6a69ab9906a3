package preset

import "crosshair-overlay/reticle"

// Built-in preset names, in the order they are seeded.
const (
	DefaultGreen = "Default Green"
	RedDot       = "Red Dot"
	BlueCross    = "Blue Cross"
	WhiteMinimal = "White Minimal"

	// Custom is the indicator shown when the active config matches no
	// preset. It is never stored.
	Custom = "Custom"
)

// Preset is a named config.
type Preset struct {
	Name   string
	Config reticle.Config
}

var (
	black = reticle.Color{R: 0, G: 0, B: 0, A: 255}
	white = reticle.Color{R: 255, G: 255, B: 255, A: 255}
)

// Default returns the "Default Green" config.
func Default() reticle.Config {
	return reticle.Config{
		Color:            reticle.Color{R: 0, G: 255, B: 0, A: 255},
		OutlineColor:     black,
		LineThickness:    2,
		Length:           8,
		Gap:              2,
		OutlineEnabled:   true,
		OutlineThickness: 1,
		Style:            reticle.StyleCross,
		DotSize:          reticle.DefaultDotSize,
	}
}

// BuiltIns returns freshly built copies of the built-in presets.
func BuiltIns() []Preset {
	redDot := Default()
	redDot.Color = reticle.Color{R: 255, G: 0, B: 0, A: 255}
	redDot.Style = reticle.StyleDot

	blueCross := Default()
	blueCross.Color = reticle.Color{R: 0, G: 128, B: 255, A: 255}
	blueCross.LineThickness = 3
	blueCross.Length = 12
	blueCross.Gap = 3

	whiteMinimal := Default()
	whiteMinimal.Color = white
	whiteMinimal.LineThickness = 1
	whiteMinimal.Length = 6
	whiteMinimal.Gap = 3
	whiteMinimal.OutlineEnabled = false
	whiteMinimal.DotSize = 4

	return []Preset{
		{Name: DefaultGreen, Config: Default()},
		{Name: RedDot, Config: redDot},
		{Name: BlueCross, Config: blueCross},
		{Name: WhiteMinimal, Config: whiteMinimal},
	}
}

// IsBuiltIn reports whether name is one of the protected built-in presets.
func IsBuiltIn(name string) bool {
	switch name {
	case DefaultGreen, RedDot, BlueCross, WhiteMinimal:
		return true
	}
	return false
}
