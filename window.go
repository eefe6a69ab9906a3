package main

import "github.com/hajimehoshi/ebiten/v2"

// ebitenWindow is the overlay.Window backed by the ebiten window.
type ebitenWindow struct{}

func (ebitenWindow) SetInteractive(interactive bool) {
	ebiten.SetWindowMousePassthrough(!interactive)
}

// setupWindow turns the ebiten window into a borderless, always-on-top
// surface covering the primary monitor.
func setupWindow() {
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	w, h := ebiten.Monitor().Size()
	if w > 0 && h > 0 {
		ebiten.SetWindowSize(w, h)
	}
	ebiten.SetWindowPosition(0, 0)
}

func runOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		ScreenTransparent: true,
		InitUnfocused:     true,
		SkipTaskbar:       true,
	}
}
