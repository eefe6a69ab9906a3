package tray

import "github.com/getlantern/systray"

// Cocoa owns the main thread, which already runs the game loop, so the tray
// only registers its callbacks.
func start(onReady, onExit func()) {
	systray.Register(onReady, onExit)
}
