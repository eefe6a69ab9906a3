package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPreviewBackground fills the preview box and draws a grid with a faint
// center cross so the reticle can be judged against light and dark areas.
func DrawPreviewBackground(screen *ebiten.Image, x, y, w, h float32, gridSize float32, fill, grid, center color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)

	if gridSize > 0 {
		for gx := x + gridSize; gx < x+w; gx += gridSize {
			vector.StrokeLine(screen, gx, y, gx, y+h, 1, grid, false)
		}
		for gy := y + gridSize; gy < y+h; gy += gridSize {
			vector.StrokeLine(screen, x, gy, x+w, gy, 1, grid, false)
		}
	}

	cx := x + float32(int(w)/2)
	cy := y + float32(int(h)/2)
	vector.StrokeLine(screen, cx, y, cx, y+h, 1, center, false)
	vector.StrokeLine(screen, x, cy, x+w, cy, 1, center, false)
	vector.StrokeRect(screen, x, y, w, h, 1, grid, false)
}
