package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"crosshair-overlay/appconfig"
	"crosshair-overlay/canvas"
	"crosshair-overlay/hotkey"
	"crosshair-overlay/input"
	"crosshair-overlay/overlay"
	"crosshair-overlay/reticle"
	"crosshair-overlay/settings"
	"crosshair-overlay/snapshot"
	"crosshair-overlay/toggle"
	"crosshair-overlay/tray"
	"crosshair-overlay/ui"
)

// hotkeyFeed is the part of hotkey.Bridge the game reads.
type hotkeyFeed interface {
	Commands() <-chan hotkey.Command
	Ready() <-chan struct{}
	Active() (hotkey.Binding, bool)
}

// Game owns every piece of UI state. Only ebiten's Update/Draw goroutine
// touches it; the hotkey listener and the tray reach it through channels.
type Game struct {
	logger *slog.Logger
	cfg    appconfig.Config

	session *settings.Session
	machine *toggle.Machine
	overlay *overlay.Controller
	hotkeys hotkeyFeed

	commands    <-chan hotkey.Command
	hotkeyReady <-chan struct{}
	trayEvents  <-chan tray.Event
	announced   bool

	// Sub-systems
	input *input.InputSystem
	panel *ui.PanelSystem
	face  font.Face

	screenWidth  int
	screenHeight int

	reticleVisible bool
	exiting        bool

	overlayPrims []reticle.Primitive
	overlayRev   uint64
	overlayW     int
	overlayH     int

	preview    *ebiten.Image
	previewRev uint64
}

// NewGame wires the session to the window. hotkeys and tr may be nil.
func NewGame(logger *slog.Logger, cfg appconfig.Config, session *settings.Session, win overlay.Window, hotkeys hotkeyFeed, tr *tray.Tray) *Game {
	g := &Game{
		logger:         logger,
		cfg:            cfg,
		session:        session,
		hotkeys:        hotkeys,
		reticleVisible: true,
	}
	if hotkeys != nil {
		g.commands = hotkeys.Commands()
		g.hotkeyReady = hotkeys.Ready()
	}
	if tr != nil {
		g.trayEvents = tr.Events()
	}

	g.face = LoadUIFont(logger)
	g.overlay = overlay.New(win)
	g.machine = toggle.New(g)
	g.input = input.NewInputSystem(g)
	g.panel = newSettingsPanel(g)
	return g
}

func (g *Game) Update() error {
	g.tick()
	if g.machine.State() == toggle.Visible {
		g.panel.Update()
	}
	return g.exitErr()
}

// tick handles everything that arrives from outside the panel.
func (g *Game) tick() {
	g.watchHotkeys()
	g.drain()
	g.input.Update()
}

// watchHotkeys announces the hotkey once the bridge has finished
// registering. Registration may need the main thread, so nothing waits on it.
func (g *Game) watchHotkeys() {
	if g.announced || g.hotkeyReady == nil {
		return
	}
	select {
	case <-g.hotkeyReady:
	default:
		return
	}
	g.announced = true
	if b, ok := g.hotkeys.Active(); ok {
		g.input.YieldToggleKey(b)
	}
	g.logger.Info("Hotkey ready", "hotkey", g.hotkeyLabel())
	g.logger.Info("controls: hotkey toggles settings, Escape hides settings or exits when hidden, H toggles the reticle, F12 saves a PNG")
}

// drain applies every command queued since the last frame.
func (g *Game) drain() {
	for {
		select {
		case cmd := <-g.commands:
			if cmd == hotkey.Toggle {
				g.machine.Handle(toggle.ToggleRequested)
			}
		case ev := <-g.trayEvents:
			switch ev {
			case tray.ToggleSettings:
				g.machine.Handle(toggle.ToggleRequested)
			case tray.ToggleReticle:
				g.ToggleReticle()
			case tray.Exit:
				g.machine.Handle(toggle.ExitRequested)
			}
		default:
			return
		}
	}
}

func (g *Game) exitErr() error {
	if g.exiting {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.reticleVisible {
		canvas.DrawPrimitives(screen, g.overlayPrimitives(), canvas.Identity, g.cfg.Antialias)
	}
	if g.machine.State() == toggle.Visible {
		g.panel.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// overlayPrimitives renders the active config at screen size, reusing the
// last result until the session or the screen changes.
func (g *Game) overlayPrimitives() []reticle.Primitive {
	rev := g.session.Revision()
	if g.overlayPrims == nil || rev != g.overlayRev || g.overlayW != g.screenWidth || g.overlayH != g.screenHeight {
		g.overlayPrims = reticle.Render(g.session.Config(), g.screenWidth, g.screenHeight)
		g.overlayRev, g.overlayW, g.overlayH = rev, g.screenWidth, g.screenHeight
	}
	return g.overlayPrims
}

// previewImage uploads the session's preview raster when it changed.
func (g *Game) previewImage() *ebiten.Image {
	w, h := g.session.PreviewSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	if g.preview != nil && g.previewRev == g.session.Revision() {
		return g.preview
	}
	if g.preview == nil || g.preview.Bounds().Dx() != w || g.preview.Bounds().Dy() != h {
		g.preview = ebiten.NewImage(w, h)
	}
	g.preview.WritePixels(snapshot.Rasterize(g.session.Preview(), w, h).Pix)
	g.previewRev = g.session.Revision()
	return g.preview
}

func (g *Game) fontFace() font.Face { return g.face }

func (g *Game) screenSize() (int, int) { return g.screenWidth, g.screenHeight }

func (g *Game) hotkeyLabel() string {
	if g.hotkeys != nil {
		if b, ok := g.hotkeys.Active(); ok {
			return b.String()
		}
	}
	return "none (tray only)"
}

// --- toggle.Effects ---

func (g *Game) ShowSettings() {
	g.overlay.MakeInteractive()
	g.panel.Status.Info("hotkey: " + g.hotkeyLabel())
	g.logger.Debug("settings shown")
}

func (g *Game) HideSettings() {
	g.panel.Entry.Cancel()
	g.overlay.RestoreClickThrough()
	g.logger.Debug("settings hidden")
}

func (g *Game) Exit() {
	g.exiting = true
	g.logger.Info("exit requested")
}

// --- input.Host ---

func (g *Game) SettingsVisible() bool { return g.machine.State() == toggle.Visible }

func (g *Game) Editing() bool { return g.SettingsVisible() && g.panel.Entry.Active() }

func (g *Game) RequestToggle() { g.machine.Handle(toggle.ToggleRequested) }

func (g *Game) RequestEscape() { g.machine.Handle(toggle.EscapePressed) }

func (g *Game) ToggleReticle() {
	g.reticleVisible = !g.reticleVisible
	g.logger.Debug("reticle visibility", "shown", g.reticleVisible)
}

func (g *Game) RequestScreenshot() {
	name := fmt.Sprintf("crosshair-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(g.cfg.ScreenshotDir, name)
	if err := snapshot.SavePNG(path, g.session.Config(), ExportSize, ExportSize); err != nil {
		g.logger.Error("screenshot failed", "err", err)
		g.panel.Status.Error("screenshot failed")
		return
	}
	g.logger.Info("screenshot saved", "path", path)
	g.panel.Status.Info("saved " + name)
}
