//go:build !darwin

package tray

func start(onReady, onExit func()) {
	runLocked(onReady, onExit)
}
