package input

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"crosshair-overlay/hotkey"
)

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f[k] }

type fakeHost struct {
	visible bool
	editing bool
	calls   []string
}

func (h *fakeHost) SettingsVisible() bool { return h.visible }
func (h *fakeHost) Editing() bool         { return h.editing }
func (h *fakeHost) RequestToggle()        { h.calls = append(h.calls, "toggle") }
func (h *fakeHost) RequestEscape()        { h.calls = append(h.calls, "escape") }
func (h *fakeHost) ToggleReticle()        { h.calls = append(h.calls, "reticle") }
func (h *fakeHost) RequestScreenshot()    { h.calls = append(h.calls, "screenshot") }

func TestUpdateRoutesKeys(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		visible bool
		editing bool
		want    []string
	}{
		{name: "toggle key", pressed: []ebiten.Key{ebiten.KeyF2}, want: []string{"toggle"}},
		{name: "escape", pressed: []ebiten.Key{ebiten.KeyEscape}, want: []string{"escape"}},
		{name: "screenshot", pressed: []ebiten.Key{ebiten.KeyF12}, want: []string{"screenshot"}},
		{name: "H while hidden", pressed: []ebiten.Key{ebiten.KeyH}},
		{name: "H while visible", pressed: []ebiten.Key{ebiten.KeyH}, visible: true, want: []string{"reticle"}},
		{name: "editing swallows keys", pressed: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyF2}, visible: true, editing: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{}
			for _, k := range tt.pressed {
				keys[k] = true
			}
			h := &fakeHost{visible: tt.visible, editing: tt.editing}
			is := NewInputSystem(h)
			is.keys = keys
			is.Update()
			if !reflect.DeepEqual(h.calls, tt.want) {
				t.Errorf("calls = %v, want %v", h.calls, tt.want)
			}
		})
	}
}

func TestYieldToggleKey(t *testing.T) {
	tests := []struct {
		binding string
		want    []string
	}{
		{"F2", nil},
		{"Ctrl+F2", nil},
		{"F3", []string{"toggle"}},
		{"Ctrl+Shift+C", []string{"toggle"}},
	}
	for _, tt := range tests {
		b, err := hotkey.ParseBinding(tt.binding)
		if err != nil {
			t.Fatal(err)
		}
		h := &fakeHost{}
		is := NewInputSystem(h)
		is.SetKeys(fakeKeys{ebiten.KeyF2: true})
		is.YieldToggleKey(b)
		is.Update()
		if !reflect.DeepEqual(h.calls, tt.want) {
			t.Errorf("%s: calls = %v, want %v", tt.binding, h.calls, tt.want)
		}
	}
}

func TestKeyByName(t *testing.T) {
	tests := map[string]ebiten.Key{
		"F2": ebiten.KeyF2,
		"C":  ebiten.KeyC,
		"7":  ebiten.KeyDigit7,
	}
	for name, want := range tests {
		got, ok := keyByName(name)
		if !ok || got != want {
			t.Errorf("keyByName(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := keyByName("NotAKey"); ok {
		t.Error("expected unknown key to fail")
	}
}
