// Package tray puts the overlay's controls in the system tray. Menu clicks
// arrive on systray's goroutines and are forwarded on a channel that the UI
// goroutine drains.
package tray

import (
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/getlantern/systray"
)

type Event int

const (
	ToggleSettings Event = iota
	ToggleReticle
	Exit
)

func (e Event) String() string {
	switch e {
	case ToggleSettings:
		return "toggle-settings"
	case ToggleReticle:
		return "toggle-reticle"
	case Exit:
		return "exit"
	}
	return "unknown"
}

type Tray struct {
	icon   []byte
	title  string
	logger *slog.Logger

	events chan Event
	quit   chan struct{}

	startOnce sync.Once
	quitOnce  sync.Once
	started   bool
}

func New(title string, icon []byte, logger *slog.Logger) *Tray {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tray{
		icon:   icon,
		title:  title,
		logger: logger,
		events: make(chan Event, 8),
		quit:   make(chan struct{}),
	}
}

// Events is drained by the UI goroutine.
func (t *Tray) Events() <-chan Event { return t.events }

// Start shows the icon.
func (t *Tray) Start() {
	t.startOnce.Do(func() {
		t.started = true
		start(t.onReady, t.onExit)
	})
}

// Quit removes the icon. Safe to call more than once.
func (t *Tray) Quit() {
	t.quitOnce.Do(func() {
		close(t.quit)
		if t.started {
			systray.Quit()
		}
	})
}

func (t *Tray) onReady() {
	if len(t.icon) > 0 {
		systray.SetIcon(platformIcon(t.icon))
	}
	systray.SetTitle(t.title)
	systray.SetTooltip(t.title)

	mSettings := systray.AddMenuItem("Show/Hide Settings", "Open or close the settings panel")
	mReticle := systray.AddMenuItem("Toggle Reticle", "Show or hide the crosshair")
	systray.AddSeparator()
	mExit := systray.AddMenuItem("Exit", "Close the overlay")

	t.logger.Debug("Tray ready")
	go func() {
		for {
			select {
			case <-mSettings.ClickedCh:
				t.send(ToggleSettings)
			case <-mReticle.ClickedCh:
				t.send(ToggleReticle)
			case <-mExit.ClickedCh:
				t.send(Exit)
			case <-t.quit:
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
	t.logger.Debug("Tray closed")
}

func (t *Tray) send(ev Event) {
	select {
	case t.events <- ev:
	case <-t.quit:
	}
}

// runLocked runs the systray loop on a dedicated OS thread.
func runLocked(onReady, onExit func()) {
	go func() {
		runtime.LockOSThread()
		systray.Run(onReady, onExit)
	}()
}
