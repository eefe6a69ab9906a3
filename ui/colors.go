package ui

import "image/color"

var (
	ColorPanel       = color.RGBA{30, 30, 35, 235}
	ColorPanelBorder = color.RGBA{80, 80, 90, 255}
	ColorButton      = color.RGBA{60, 60, 70, 220}
	ColorButtonHover = color.RGBA{0, 120, 255, 255}
	ColorEntry       = color.RGBA{20, 20, 25, 255}
	ColorText        = color.RGBA{230, 230, 230, 255}
	ColorTextDim     = color.RGBA{150, 150, 150, 255}
	ColorAccent      = color.RGBA{50, 205, 50, 255}
	ColorWarning     = color.RGBA{255, 200, 50, 255}
)
