package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextDrawer draws s with its top-left corner at (x, y).
type TextDrawer func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button, highlighted when hovered.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, drawText TextDrawer, hovered bool) {
	bg := ColorButton
	if hovered {
		bg = ColorButtonHover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	if face == nil || drawText == nil {
		return
	}
	tw := font.MeasureString(face, b.Label).Ceil()
	th := face.Metrics().Height.Ceil()
	drawText(screen, face, b.Label, int(b.X+(b.W-float32(tw))/2), int(b.Y+(b.H-float32(th))/2), ColorText)
}
