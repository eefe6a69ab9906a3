// Package canvas paints reticle primitives onto ebiten images.
package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"crosshair-overlay/reticle"
)

// DrawPrimitives paints prims in order, so later primitives cover earlier
// ones.
func DrawPrimitives(screen *ebiten.Image, prims []reticle.Primitive, vp Viewport, antialias bool) {
	for _, p := range prims {
		switch p := p.(type) {
		case reticle.Line:
			drawLine(screen, p, vp, antialias)
		case reticle.Circle:
			x, y := vp.ToScreen(p.Center)
			r := vp.Length(p.Radius)
			if p.Filled {
				vector.DrawFilledCircle(screen, x, y, r, p.Color.RGBA(), antialias)
			} else {
				vector.StrokeCircle(screen, x, y, r, 1, p.Color.RGBA(), antialias)
			}
		}
	}
}

// StrokeLine has butt ends. Round caps are added as discs.
func drawLine(screen *ebiten.Image, l reticle.Line, vp Viewport, antialias bool) {
	x0, y0 := vp.ToScreen(l.P1)
	x1, y1 := vp.ToScreen(l.P2)
	w := vp.Length(l.Width)
	clr := l.Color.RGBA()
	if x0 != x1 || y0 != y1 {
		vector.StrokeLine(screen, x0, y0, x1, y1, w, clr, antialias)
	}
	if l.Cap == reticle.CapRound {
		vector.DrawFilledCircle(screen, x0, y0, w/2, clr, antialias)
		vector.DrawFilledCircle(screen, x1, y1, w/2, clr, antialias)
	}
}
