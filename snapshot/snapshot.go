// Package snapshot rasterizes reticle primitives off screen with gg. It backs
// the settings preview, PNG export and the tray icon.
package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"crosshair-overlay/reticle"
)

// iconPadding is the transparent margin, in pixels, left around a tray icon.
const iconPadding = 2

// Rasterize draws prims, in order, onto a transparent w×h image.
func Rasterize(prims []reticle.Primitive, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	draw(dc, prims)
	return toRGBA(dc.Image())
}

// EncodePNG writes prims rendered at w×h as a PNG.
func EncodePNG(out io.Writer, prims []reticle.Primitive, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("encode png: empty %dx%d image", w, h)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	draw(dc, prims)
	return dc.EncodePNG(out)
}

// SavePNG renders cfg centered in a w×h image and writes it to path.
func SavePNG(path string, cfg reticle.Config, w, h int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePNG(f, reticle.Render(cfg, w, h), w, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Icon renders cfg scaled to fill a size×size PNG.
func Icon(cfg reticle.Config, size int) ([]byte, error) {
	if size <= 2*iconPadding {
		return nil, fmt.Errorf("icon size %d too small", size)
	}
	// A 0×0 viewport puts the reticle center at the origin.
	prims := reticle.Render(cfg, 0, 0)
	lo, hi, ok := reticle.Bounds(prims)
	if !ok {
		return nil, fmt.Errorf("empty reticle")
	}
	extent := math.Max(math.Max(-lo.X, hi.X), math.Max(-lo.Y, hi.Y))
	scale := 1.0
	if extent > 0 {
		scale = (float64(size)/2 - iconPadding) / extent
	}

	dc := gg.NewContext(size, size)
	defer dc.Close()
	dc.Translate(float64(size)/2, float64(size)/2)
	dc.Scale(scale, scale)
	draw(dc, prims)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func draw(dc *gg.Context, prims []reticle.Primitive) {
	for _, p := range prims {
		switch p := p.(type) {
		case reticle.Line:
			dc.SetColor(p.Color.NRGBA())
			dc.SetLineWidth(p.Width)
			dc.SetLineCap(lineCap(p.Cap))
			dc.SetLineJoin(lineJoin(p.Join))
			dc.DrawLine(p.P1.X, p.P1.Y, p.P2.X, p.P2.Y)
			_ = dc.Stroke()
		case reticle.Circle:
			dc.SetColor(p.Color.NRGBA())
			dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
			if p.Filled {
				_ = dc.Fill()
			} else {
				_ = dc.Stroke()
			}
		}
	}
}

func lineCap(c reticle.Cap) gg.LineCap {
	if c == reticle.CapRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}

func lineJoin(j reticle.Join) gg.LineJoin {
	if j == reticle.JoinMiter {
		return gg.LineJoinMiter
	}
	return gg.LineJoinRound
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}
