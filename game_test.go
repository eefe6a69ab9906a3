package main

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"crosshair-overlay/appconfig"
	"crosshair-overlay/hotkey"
	"crosshair-overlay/preset"
	"crosshair-overlay/reticle"
	"crosshair-overlay/settings"
	"crosshair-overlay/toggle"
	"crosshair-overlay/tray"
)

type fakeWindow struct {
	interactive bool
	calls       int
}

func (w *fakeWindow) SetInteractive(b bool) {
	w.interactive = b
	w.calls++
}

type fakeFeed struct {
	commands chan hotkey.Command
	ready    chan struct{}
	active   hotkey.Binding
}

func newFakeFeed(active string) *fakeFeed {
	b, _ := hotkey.ParseBinding(active)
	return &fakeFeed{commands: make(chan hotkey.Command, 4), ready: make(chan struct{}), active: b}
}

func (f *fakeFeed) Commands() <-chan hotkey.Command { return f.commands }
func (f *fakeFeed) Ready() <-chan struct{}          { return f.ready }
func (f *fakeFeed) Active() (hotkey.Binding, bool) {
	select {
	case <-f.ready:
		return f.active, true
	default:
		return hotkey.Binding{}, false
	}
}

type pressedKeys map[ebiten.Key]bool

func (p pressedKeys) JustPressed(k ebiten.Key) bool { return p[k] }

func newTestGame(t *testing.T) (*Game, *fakeWindow) {
	t.Helper()
	return newTestGameWith(t, nil)
}

func newTestGameWith(t *testing.T, feed hotkeyFeed) (*Game, *fakeWindow) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := appconfig.Default().Resolve(dir)
	store := preset.Open(filepath.Join(dir, "presets.json"), logger)
	session := settings.NewSession(store, settings.NewModel(cfg.SettingsFile, preset.Default()), 200, 400)
	win := &fakeWindow{}
	return NewGame(logger, cfg, session, win, feed, nil), win
}

func TestGameStartsClickThrough(t *testing.T) {
	g, win := newTestGame(t)
	if win.calls != 1 || win.interactive {
		t.Fatalf("window after start: calls=%d interactive=%v", win.calls, win.interactive)
	}
	if g.SettingsVisible() || !g.reticleVisible {
		t.Fatal("expected hidden settings and a visible reticle")
	}
}

func TestToggleSwitchesWindowMode(t *testing.T) {
	g, win := newTestGame(t)

	g.RequestToggle()
	if !g.SettingsVisible() || !win.interactive {
		t.Fatalf("after toggle: visible=%v interactive=%v", g.SettingsVisible(), win.interactive)
	}

	g.panel.Entry.Open("Preset name:", "", nil)
	g.RequestEscape()
	if g.SettingsVisible() || win.interactive {
		t.Fatalf("after escape: visible=%v interactive=%v", g.SettingsVisible(), win.interactive)
	}
	if g.panel.Entry.Active() {
		t.Error("hiding left the text entry open")
	}

	g.RequestEscape()
	if g.machine.State() != toggle.Exited {
		t.Fatalf("state = %v, want exited", g.machine.State())
	}
	if !errors.Is(g.exitErr(), ebiten.Termination) {
		t.Fatalf("exitErr = %v", g.exitErr())
	}
}

func TestDrainAppliesQueuedCommands(t *testing.T) {
	g, _ := newTestGame(t)
	commands := make(chan hotkey.Command, 4)
	events := make(chan tray.Event, 4)
	g.commands, g.trayEvents = commands, events

	commands <- hotkey.Toggle
	events <- tray.ToggleReticle
	g.drain()
	if !g.SettingsVisible() || g.reticleVisible {
		t.Fatalf("visible=%v reticle=%v", g.SettingsVisible(), g.reticleVisible)
	}

	events <- tray.ToggleSettings
	events <- tray.Exit
	commands <- hotkey.Toggle
	g.drain()
	if g.machine.State() != toggle.Exited || g.exitErr() == nil {
		t.Fatalf("state = %v", g.machine.State())
	}
}

func TestOverlayPrimitivesFollowSession(t *testing.T) {
	g, _ := newTestGame(t)
	g.Layout(1920, 1080)

	prims := g.overlayPrimitives()
	if len(prims) != 8 {
		t.Fatalf("cross with outline: %d primitives", len(prims))
	}
	top := prims[4].(reticle.Line)
	if top.P2.X != 960 || top.P2.Y != 538 {
		t.Fatalf("top arm ends at %+v", top.P2)
	}

	g.session.SelectPreset(preset.RedDot)
	prims = g.overlayPrimitives()
	if len(prims) != 2 {
		t.Fatalf("dot with outline: %d primitives", len(prims))
	}
	if c := prims[1].(reticle.Circle); c.Center.X != 960 || c.Center.Y != 540 {
		t.Fatalf("dot center %+v", c.Center)
	}
}

func TestPanelReportsRejections(t *testing.T) {
	g, _ := newTestGame(t)
	g.RequestToggle()

	saveAs := g.panel.Actions[0]
	saveAs.OnClick()
	if !g.Editing() {
		t.Fatal("Save As did not open the text entry")
	}
	g.panel.Entry.Type([]rune(preset.RedDot))
	g.panel.Entry.Commit()
	if !g.panel.Status.IsError || g.panel.Status.Text != "name already exists" {
		t.Fatalf("status = %+v", *g.panel.Status)
	}

	g.session.SelectPreset(preset.BlueCross)
	g.panel.Actions[2].OnClick()
	if g.panel.Status.Text != "built-in presets cannot be changed" {
		t.Fatalf("delete built-in: status = %+v", *g.panel.Status)
	}

	saveAs.OnClick()
	g.panel.Entry.Type([]rune("mine"))
	g.panel.Entry.Commit()
	if g.panel.Status.IsError || g.session.Indicator() != "mine" {
		t.Fatalf("save as mine: status %+v indicator %q", *g.panel.Status, g.session.Indicator())
	}
}

func TestPanelRowsClampEdits(t *testing.T) {
	g, _ := newTestGame(t)
	var gap *struct{ dec, inc func() }
	for _, r := range g.panel.Rows {
		if r.Label == "Gap" {
			gap = &struct{ dec, inc func() }{r.OnDec, r.OnInc}
		}
	}
	if gap == nil {
		t.Fatal("no Gap row")
	}
	for i := 0; i < 5; i++ {
		gap.dec()
	}
	if got := g.session.Config().Gap; got != reticle.MinGap {
		t.Fatalf("gap = %d, want %d", got, reticle.MinGap)
	}
	if g.session.Indicator() != preset.Custom {
		t.Fatalf("indicator = %q", g.session.Indicator())
	}
	gap.inc()
	gap.inc()
	if g.session.Indicator() != preset.DefaultGreen {
		t.Fatalf("indicator after revert = %q", g.session.Indicator())
	}
}

func TestHotkeyLabelWithoutBridge(t *testing.T) {
	g, _ := newTestGame(t)
	if g.hotkeyLabel() != "none (tray only)" {
		t.Fatalf("label = %q", g.hotkeyLabel())
	}
}

func TestGlobalHotkeyAndWindowKeyToggleOnce(t *testing.T) {
	feed := newFakeFeed("F2")
	g, _ := newTestGameWith(t, feed)
	g.input.SetKeys(pressedKeys{ebiten.KeyF2: true})

	close(feed.ready)
	feed.commands <- hotkey.Toggle
	g.tick()
	if !g.SettingsVisible() {
		t.Fatal("one F2 press toggled twice")
	}
	if g.hotkeyLabel() != "F2" {
		t.Fatalf("label = %q", g.hotkeyLabel())
	}
}

func TestWindowKeyTogglesBeforeHotkeyReady(t *testing.T) {
	feed := newFakeFeed("F2")
	g, _ := newTestGameWith(t, feed)
	g.input.SetKeys(pressedKeys{ebiten.KeyF2: true})

	g.tick()
	if !g.SettingsVisible() || g.announced {
		t.Fatalf("visible=%v announced=%v", g.SettingsVisible(), g.announced)
	}
}

func TestPanelStatusUsesTrimmedName(t *testing.T) {
	g, _ := newTestGame(t)
	g.RequestToggle()

	g.panel.Actions[0].OnClick()
	g.panel.Entry.Type([]rune("  spaced  "))
	g.panel.Entry.Commit()
	if g.panel.Status.IsError || g.panel.Status.Text != `saved preset "spaced"` {
		t.Fatalf("save as: status = %+v", *g.panel.Status)
	}

	g.panel.Actions[1].OnClick()
	g.panel.Entry.Text = ""
	g.panel.Entry.Type([]rune(" renamed "))
	g.panel.Entry.Commit()
	if g.panel.Status.IsError || g.panel.Status.Text != `renamed to "renamed"` {
		t.Fatalf("rename: status = %+v", *g.panel.Status)
	}
	if g.session.Indicator() != "renamed" {
		t.Fatalf("indicator = %q", g.session.Indicator())
	}
}
