package canvas

import "crosshair-overlay/reticle"

// Viewport places reticle coordinates on the screen.
type Viewport struct {
	X, Y  float64 // screen position of the reticle origin
	Scale float64
}

// Identity draws primitives at their own coordinates.
var Identity = Viewport{Scale: 1}

func (v Viewport) ToScreen(p reticle.Point) (float32, float32) {
	s := v.scale()
	return float32(p.X*s + v.X), float32(p.Y*s + v.Y)
}

func (v Viewport) Length(l float64) float32 {
	return float32(l * v.scale())
}

func (v Viewport) scale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}
