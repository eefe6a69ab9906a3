package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// StatusLine shows one message at the bottom of the panel. Errors are drawn
// in the warning color.
type StatusLine struct {
	Text    string
	IsError bool
}

func (s *StatusLine) Info(msg string) {
	s.Text, s.IsError = msg, false
}

func (s *StatusLine) Error(msg string) {
	s.Text, s.IsError = msg, true
}

func (s *StatusLine) Clear() {
	s.Text, s.IsError = "", false
}

func (s *StatusLine) Draw(screen *ebiten.Image, x, y int, face font.Face, drawText TextDrawer) {
	if s == nil || s.Text == "" || face == nil || drawText == nil {
		return
	}
	var clr color.Color = ColorTextDim
	if s.IsError {
		clr = ColorWarning
	}
	drawText(screen, face, s.Text, x, y, clr)
}
