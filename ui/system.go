// Package ui draws the settings panel and routes clicks to its controls.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	PanelWidth  = 650
	PanelHeight = 550

	padding     = 20
	titleHeight = 40
	rowHeight   = 34
	labelWidth  = 150
	valueWidth  = 140
	smallButton = 28
	buttonH     = 30
	entryHeight = 32
)

// Row is one editable setting: a label, the current value and − / +
// buttons. A nil OnDec hides both buttons.
type Row struct {
	Label string
	Value func() string
	OnDec func()
	OnInc func()

	dec, inc *Button
}

// PanelSystem lays out the settings panel centered on the screen. Every
// control calls back into the owner; the panel keeps no settings state.
type PanelSystem struct {
	Title   string
	Rows    []*Row
	Actions []*Button
	Entry   *TextEntry
	Status  *StatusLine

	// PreviewW×PreviewH is the box handed to DrawPreview.
	PreviewW, PreviewH int
	DrawPreview        func(screen *ebiten.Image, x, y, w, h float32)

	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      TextDrawer

	x, y float32
}

func NewPanelSystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText TextDrawer) *PanelSystem {
	return &PanelSystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Entry:         &TextEntry{},
		Status:        &StatusLine{},
	}
}

// AddRow appends a setting row.
func (p *PanelSystem) AddRow(label string, value func() string, onDec, onInc func()) {
	r := &Row{Label: label, Value: value, OnDec: onDec, OnInc: onInc}
	if onDec != nil {
		r.dec = &Button{Label: "-", W: smallButton, H: smallButton, OnClick: onDec}
		r.inc = &Button{Label: "+", W: smallButton, H: smallButton, OnClick: onInc}
	}
	p.Rows = append(p.Rows, r)
}

// AddAction appends a button to the bottom action bar.
func (p *PanelSystem) AddAction(label string, onClick func()) {
	p.Actions = append(p.Actions, &Button{Label: label, H: buttonH, OnClick: onClick})
}

// Bounds returns the panel rectangle for the current screen size.
func (p *PanelSystem) Bounds() (x, y, w, h float32) {
	p.layout()
	return p.x, p.y, PanelWidth, PanelHeight
}

func (p *PanelSystem) layout() {
	sw, sh := p.getScreenSize()
	p.x = float32((sw - PanelWidth) / 2)
	p.y = float32((sh - PanelHeight) / 2)

	rowY := p.y + titleHeight + padding
	for _, r := range p.Rows {
		if r.dec != nil {
			r.dec.X = p.x + padding + labelWidth
			r.dec.Y = rowY + (rowHeight-smallButton)/2
			r.inc.X = r.dec.X + smallButton + valueWidth
			r.inc.Y = r.dec.Y
		}
		rowY += rowHeight
	}

	if len(p.Actions) > 0 {
		gap := float32(8)
		bw := (PanelWidth - 2*padding - gap*float32(len(p.Actions)-1)) / float32(len(p.Actions))
		for i, b := range p.Actions {
			b.W = bw
			b.X = p.x + padding + float32(i)*(bw+gap)
			b.Y = p.y + PanelHeight - padding - buttonH - 30
		}
	}
}

func (p *PanelSystem) previewRect() (x, y, w, h float32) {
	w, h = float32(p.PreviewW), float32(p.PreviewH)
	x = p.x + PanelWidth - padding - w
	y = p.y + titleHeight + padding
	return x, y, w, h
}

func (p *PanelSystem) buttons() []*Button {
	out := make([]*Button, 0, 2*len(p.Rows)+len(p.Actions))
	for _, r := range p.Rows {
		if r.dec != nil {
			out = append(out, r.dec, r.inc)
		}
	}
	return append(out, p.Actions...)
}

// IsMouseOver reports whether (mx, my) lies on the panel.
func (p *PanelSystem) IsMouseOver(mx, my int) bool {
	x, y, w, h := p.Bounds()
	return float32(mx) >= x && float32(mx) <= x+w && float32(my) >= y && float32(my) <= y+h
}

// Click runs the control under (mx, my). It reports whether one was hit.
// Clicks are ignored while the text entry is open.
func (p *PanelSystem) Click(mx, my int) bool {
	if p.Entry.Active() {
		return false
	}
	p.layout()
	for _, b := range p.buttons() {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (p *PanelSystem) Update() {
	if p.Entry.Active() {
		p.Entry.Update()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p.Click(mx, my)
	}
}

func (p *PanelSystem) Draw(screen *ebiten.Image) {
	p.layout()
	face := p.getFontFace()

	vector.DrawFilledRect(screen, p.x, p.y, PanelWidth, PanelHeight, ColorPanel, false)
	vector.StrokeRect(screen, p.x, p.y, PanelWidth, PanelHeight, 1, ColorPanelBorder, false)
	if face != nil && p.drawText != nil {
		p.drawText(screen, face, p.Title, int(p.x)+padding, int(p.y)+12, ColorAccent)
	}

	mx, my := ebiten.CursorPosition()
	rowY := p.y + titleHeight + padding
	for _, r := range p.Rows {
		if face != nil && p.drawText != nil {
			ty := int(rowY) + (rowHeight-face.Metrics().Height.Ceil())/2
			p.drawText(screen, face, r.Label, int(p.x)+padding, ty, ColorTextDim)
			if r.Value != nil {
				vx := int(p.x) + padding + labelWidth
				if r.dec != nil {
					vx += smallButton + 8
				}
				p.drawText(screen, face, r.Value(), vx, ty, ColorText)
			}
		}
		if r.dec != nil {
			r.dec.Draw(screen, face, p.drawText, r.dec.IsMouseOver(mx, my))
			r.inc.Draw(screen, face, p.drawText, r.inc.IsMouseOver(mx, my))
		}
		rowY += rowHeight
	}

	for _, b := range p.Actions {
		b.Draw(screen, face, p.drawText, !p.Entry.Active() && b.IsMouseOver(mx, my))
	}

	if p.DrawPreview != nil && p.PreviewW > 0 && p.PreviewH > 0 {
		px, py, pw, ph := p.previewRect()
		p.DrawPreview(screen, px, py, pw, ph)
	}

	if p.Entry.Active() {
		ey := p.y + PanelHeight - padding - buttonH - 30 - entryHeight - 10
		p.Entry.Draw(screen, p.x+padding, ey, PanelWidth-2*padding, entryHeight, face, p.drawText)
	}
	p.Status.Draw(screen, int(p.x)+padding, int(p.y)+PanelHeight-padding-16, face, p.drawText)
}
