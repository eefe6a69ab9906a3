package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"crosshair-overlay/canvas"
	"crosshair-overlay/preset"
	"crosshair-overlay/reticle"
	"crosshair-overlay/ui"
)

// newSettingsPanel builds the settings surface. Every control edits the
// session; the panel itself holds no reticle state.
func newSettingsPanel(g *Game) *ui.PanelSystem {
	p := ui.NewPanelSystem(g.fontFace, g.screenSize, DrawTextLines)
	p.Title = WindowTitle
	s := g.session

	p.AddRow("Preset", s.Indicator, func() { s.StepPreset(-1) }, func() { s.StepPreset(1) })
	flipStyle := func() {
		s.Edit(func(c *reticle.Config) {
			if c.Style == reticle.StyleDot {
				c.Style = reticle.StyleCross
			} else {
				c.Style = reticle.StyleDot
			}
		})
	}
	p.AddRow("Style", func() string { return s.Config().Style.String() }, flipStyle, flipStyle)
	p.AddRow("Color", func() string { return colorLabel(s.Config().Color) },
		func() { s.Edit(func(c *reticle.Config) { c.Color = reticle.StepPalette(c.Color, -1) }) },
		func() { s.Edit(func(c *reticle.Config) { c.Color = reticle.StepPalette(c.Color, 1) }) })
	p.AddRow("Outline color", func() string { return colorLabel(s.Config().OutlineColor) },
		func() { s.Edit(func(c *reticle.Config) { c.OutlineColor = reticle.StepPalette(c.OutlineColor, -1) }) },
		func() { s.Edit(func(c *reticle.Config) { c.OutlineColor = reticle.StepPalette(c.OutlineColor, 1) }) })
	flipOutline := func() { s.Edit(func(c *reticle.Config) { c.OutlineEnabled = !c.OutlineEnabled }) }
	p.AddRow("Outline", func() string { return onOff(s.Config().OutlineEnabled) }, flipOutline, flipOutline)

	intRow := func(label string, field func(*reticle.Config) *int, lo, hi int) {
		value := func() string {
			c := s.Config()
			return strconv.Itoa(*field(&c))
		}
		step := func(delta int) func() {
			return func() {
				s.Edit(func(c *reticle.Config) {
					f := field(c)
					*f = clampInt(*f+delta, lo, hi)
				})
			}
		}
		p.AddRow(label, value, step(-1), step(1))
	}
	intRow("Thickness", func(c *reticle.Config) *int { return &c.LineThickness }, reticle.MinLineThickness, reticle.MaxLineThickness)
	intRow("Length", func(c *reticle.Config) *int { return &c.Length }, reticle.MinLength, reticle.MaxLength)
	intRow("Gap", func(c *reticle.Config) *int { return &c.Gap }, reticle.MinGap, reticle.MaxGap)
	intRow("Outline width", func(c *reticle.Config) *int { return &c.OutlineThickness }, reticle.MinOutlineThickness, reticle.MaxOutlineThickness)
	intRow("Dot size", func(c *reticle.Config) *int { return &c.DotSize }, reticle.MinDotSize, reticle.MaxDotSize)

	p.AddRow("Reticle (H)", func() string { return shownHidden(g.reticleVisible) }, g.ToggleReticle, g.ToggleReticle)
	p.AddRow("Hotkey", g.hotkeyLabel, nil, nil)

	p.AddAction("Save As", func() {
		p.Entry.Open("Preset name:", "", func(name string) {
			g.report(s.SaveAsPreset(name), fmt.Sprintf("saved preset %q", strings.TrimSpace(name)))
		})
	})
	p.AddAction("Rename", func() {
		if s.Indicator() == preset.Custom {
			p.Status.Error("select a saved preset to rename")
			return
		}
		p.Entry.Open("Rename to:", s.Indicator(), func(name string) {
			g.report(s.RenameSelected(name), fmt.Sprintf("renamed to %q", strings.TrimSpace(name)))
		})
	})
	p.AddAction("Delete", func() {
		name := s.Indicator()
		g.report(s.DeleteSelected(), fmt.Sprintf("deleted %q", name))
	})
	p.AddAction("Reset", func() {
		s.ResetToDefault()
		p.Status.Info("reset to " + preset.DefaultGreen)
	})
	p.AddAction("Save Settings", func() {
		g.report(s.SaveSettings(), "settings saved")
	})

	p.PreviewW, p.PreviewH = s.PreviewSize()
	p.DrawPreview = g.drawPreview
	return p
}

// drawPreview paints the cached preview raster inside the panel.
func (g *Game) drawPreview(screen *ebiten.Image, x, y, w, h float32) {
	canvas.DrawPreviewBackground(screen, x, y, w, h, PreviewGridSize, ColorPreviewBackground, ColorPreviewGrid, ColorPreviewCenter)
	img := g.previewImage()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// report shows err on the status line, or ok when err is nil.
func (g *Game) report(err error, ok string) {
	if err == nil {
		g.panel.Status.Info(ok)
		return
	}
	g.logger.Debug("settings action rejected", "err", err)
	g.panel.Status.Error(describe(err))
}

func describe(err error) string {
	switch {
	case errors.Is(err, preset.ErrExists):
		return "name already exists"
	case errors.Is(err, preset.ErrBuiltIn):
		return "built-in presets cannot be changed"
	case errors.Is(err, preset.ErrInvalidName):
		return "invalid preset name"
	case errors.Is(err, preset.ErrNotFound):
		return "no saved preset selected"
	}
	return err.Error()
}

func colorLabel(c reticle.Color) string {
	if name := reticle.PaletteName(c); name != "" {
		return name
	}
	return c.Hex()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func shownHidden(b bool) string {
	if b {
		return "shown"
	}
	return "hidden"
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
