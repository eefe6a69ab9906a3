package main

import "image/color"

const (
	WindowTitle  = "Crosshair Overlay"
	InstanceName = "crosshair-overlay"

	// --- Fonts ---
	UIFontPath = "fonts/Roboto-Regular.ttf"
	UIFontSize = 16

	// --- Preview ---
	PreviewGridSize = 20.0

	// --- Exports ---
	// Screenshots and -export images are square.
	ExportSize = 256
	IconSize   = 32
)

var (
	// --- Colors ---
	ColorPreviewBackground = color.RGBA{18, 18, 22, 255}
	ColorPreviewGrid       = color.RGBA{255, 255, 255, 18}
	ColorPreviewCenter     = color.RGBA{255, 100, 100, 90}
	ColorHiddenBanner      = color.RGBA{200, 200, 200, 160}
)
