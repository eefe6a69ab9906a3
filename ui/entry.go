package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	maxEntryLen     = 48
	cursorBlinkRate = 500 // ms
)

// TextEntry is a one-line prompt. Enter commits, Escape cancels. While it is
// active it owns the keyboard.
type TextEntry struct {
	Prompt string
	Text   string

	active   bool
	onCommit func(string)
}

func (e *TextEntry) Active() bool { return e.active }

// Open starts editing with initial text. onCommit receives the final text.
func (e *TextEntry) Open(prompt, initial string, onCommit func(string)) {
	e.Prompt = prompt
	e.Text = initial
	e.onCommit = onCommit
	e.active = true
}

func (e *TextEntry) Type(runes []rune) {
	if !e.active {
		return
	}
	text := []rune(e.Text)
	for _, r := range runes {
		if len(text) >= maxEntryLen {
			break
		}
		if r < 0x20 || r == 0x7f {
			continue
		}
		text = append(text, r)
	}
	e.Text = string(text)
}

func (e *TextEntry) Backspace() {
	if !e.active {
		return
	}
	text := []rune(e.Text)
	if len(text) > 0 {
		e.Text = string(text[:len(text)-1])
	}
}

func (e *TextEntry) Commit() {
	if !e.active {
		return
	}
	e.active = false
	if e.onCommit != nil {
		e.onCommit(e.Text)
	}
}

// Cancel closes the entry without calling the commit callback.
func (e *TextEntry) Cancel() {
	e.active = false
	e.onCommit = nil
}

// Update reads this frame's typed characters and editing keys.
func (e *TextEntry) Update() {
	if !e.active {
		return
	}
	e.Type(ebiten.AppendInputChars(nil))
	if repeating(ebiten.KeyBackspace) {
		e.Backspace()
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		e.Commit()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		e.Cancel()
	}
}

func (e *TextEntry) Draw(screen *ebiten.Image, x, y, w, h float32, face font.Face, drawText TextDrawer) {
	if !e.active {
		return
	}
	vector.DrawFilledRect(screen, x, y, w, h, ColorEntry, false)
	vector.StrokeRect(screen, x, y, w, h, 1, ColorButtonHover, false)
	if face == nil || drawText == nil {
		return
	}
	text := e.Prompt + " " + e.Text
	if (time.Now().UnixMilli()/cursorBlinkRate)%2 == 0 {
		text += "|"
	}
	drawText(screen, face, text, int(x)+8, int(y)+(int(h)-face.Metrics().Height.Ceil())/2, ColorText)
}

// repeating reports a key press plus key repeat after a short delay.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	const delay, interval = 30, 3
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}
