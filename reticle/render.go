package reticle

import "math"

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Cap is the shape drawn at the ends of a line.
type Cap int

const (
	CapFlat Cap = iota
	CapRound
)

// Join is the shape drawn where two line segments meet.
type Join int

const (
	JoinRound Join = iota
	JoinMiter
)

// Primitive is a single draw operation produced by Render. The concrete
// types are Line and Circle.
type Primitive interface {
	primitive()
}

// Line is a stroked segment.
type Line struct {
	P1, P2 Point
	Width  float64
	Color  Color
	Cap    Cap
	Join   Join
}

// Circle is a disc centered on Center.
type Circle struct {
	Center Point
	Radius float64
	Color  Color
	Filled bool
}

func (Line) primitive()   {}
func (Circle) primitive() {}

// Render turns cfg into the ordered primitives that draw it centered in a
// width x height viewport. Outline primitives always come before the main
// color primitives, so painting them in order puts the main color on top.
//
// Render never fails: zero-sized viewports and out-of-range configs still
// produce primitives, possibly degenerate ones.
func Render(cfg Config, width, height int) []Primitive {
	center := Point{X: float64(width / 2), Y: float64(height / 2)}

	if cfg.Style == StyleDot {
		return renderDot(cfg, center)
	}
	return renderCross(cfg, center)
}

func renderCross(cfg Config, c Point) []Primitive {
	n := 4
	if cfg.OutlineEnabled {
		n = 8
	}
	out := make([]Primitive, 0, n)

	if cfg.OutlineEnabled {
		width := float64(cfg.LineThickness + 2*cfg.OutlineThickness)
		out = appendArms(out, c, cfg.Length, cfg.Gap, width, cfg.OutlineColor)
	}
	return appendArms(out, c, cfg.Length, cfg.Gap, float64(cfg.LineThickness), cfg.Color)
}

// appendArms appends the four arms in top, bottom, left, right order.
func appendArms(out []Primitive, c Point, length, gap int, width float64, clr Color) []Primitive {
	l := float64(length)
	g := float64(gap)
	seg := func(x1, y1, x2, y2 float64) Line {
		return Line{
			P1:    Point{X: x1, Y: y1},
			P2:    Point{X: x2, Y: y2},
			Width: width,
			Color: clr,
			Cap:   CapFlat,
			Join:  JoinRound,
		}
	}
	return append(out,
		seg(c.X, c.Y-l-g, c.X, c.Y-g),
		seg(c.X, c.Y+g, c.X, c.Y+l+g),
		seg(c.X-l-g, c.Y, c.X-g, c.Y),
		seg(c.X+g, c.Y, c.X+l+g, c.Y),
	)
}

func renderDot(cfg Config, c Point) []Primitive {
	radius := float64(cfg.DotSize) / 2
	out := make([]Primitive, 0, 2)
	if cfg.OutlineEnabled {
		out = append(out, Circle{
			Center: c,
			Radius: radius + float64(cfg.OutlineThickness),
			Color:  cfg.OutlineColor,
			Filled: true,
		})
	}
	return append(out, Circle{Center: c, Radius: radius, Color: cfg.Color, Filled: true})
}

// Bounds returns the smallest rectangle, as min and max corners, that covers
// every primitive including stroke width. ok is false for an empty list.
func Bounds(prims []Primitive) (lo, hi Point, ok bool) {
	grow := func(x0, y0, x1, y1 float64) {
		if !ok {
			lo, hi, ok = Point{X: x0, Y: y0}, Point{X: x1, Y: y1}, true
			return
		}
		lo.X = math.Min(lo.X, x0)
		lo.Y = math.Min(lo.Y, y0)
		hi.X = math.Max(hi.X, x1)
		hi.Y = math.Max(hi.Y, y1)
	}
	for _, p := range prims {
		switch p := p.(type) {
		case Line:
			h := p.Width / 2
			x0, x1 := p.P1.X, p.P2.X
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			y0, y1 := p.P1.Y, p.P2.Y
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			grow(x0-h, y0-h, x1+h, y1+h)
		case Circle:
			grow(p.Center.X-p.Radius, p.Center.Y-p.Radius, p.Center.X+p.Radius, p.Center.Y+p.Radius)
		}
	}
	return lo, hi, ok
}
