// Package input turns key presses in the overlay window into host actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"crosshair-overlay/hotkey"
)

// Host defines the callbacks the input system needs from the main game.
type Host interface {
	SettingsVisible() bool
	// Editing reports whether a text field owns the keyboard.
	Editing() bool
	RequestToggle()
	RequestEscape()
	ToggleReticle()
	RequestScreenshot()
}

// Keys reports keys pressed this frame.
type Keys interface {
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type InputSystem struct {
	host Host
	keys Keys

	// ToggleKey is the in-window equivalent of the global hotkey.
	ToggleKey ebiten.Key
	yielded   bool
}

func NewInputSystem(h Host) *InputSystem {
	return &InputSystem{host: h, keys: ebitenKeys{}, ToggleKey: ebiten.KeyF2}
}

// SetKeys replaces the key reader.
func (is *InputSystem) SetKeys(k Keys) { is.keys = k }

// YieldToggleKey stops ToggleKey from toggling in-window when the global
// binding uses the same key, so one press toggles once.
func (is *InputSystem) YieldToggleKey(b hotkey.Binding) {
	if k, ok := keyByName(b.Key); ok && k == is.ToggleKey {
		is.yielded = true
	}
}

// Update runs once per tick on the UI goroutine.
func (is *InputSystem) Update() {
	if is.host.Editing() {
		return
	}

	if is.keys.JustPressed(ebiten.KeyF12) {
		is.host.RequestScreenshot()
	}
	if !is.yielded && is.keys.JustPressed(is.ToggleKey) {
		is.host.RequestToggle()
	}
	if is.keys.JustPressed(ebiten.KeyEscape) {
		is.host.RequestEscape()
	}
	if is.host.SettingsVisible() && is.keys.JustPressed(ebiten.KeyH) {
		is.host.ToggleReticle()
	}
}

// Held reports whether every key of b is held. It backs the polling hotkey
// source, which only sees keys while the overlay has focus.
func Held(b hotkey.Binding) bool {
	for _, m := range []struct {
		mod hotkey.Modifier
		key ebiten.Key
	}{
		{hotkey.ModCtrl, ebiten.KeyControl},
		{hotkey.ModShift, ebiten.KeyShift},
		{hotkey.ModAlt, ebiten.KeyAlt},
		{hotkey.ModSuper, ebiten.KeyMeta},
	} {
		if b.Mods&m.mod != 0 && !ebiten.IsKeyPressed(m.key) {
			return false
		}
	}
	k, ok := keyByName(b.Key)
	return ok && ebiten.IsKeyPressed(k)
}

func keyByName(name string) (ebiten.Key, bool) {
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		name = "Digit" + name
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, false
	}
	return k, true
}
