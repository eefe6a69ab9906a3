//go:build linux

package hotkey

import (
	"os"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestX11SourceWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	src := NewSource(nil)
	b := NewBridge(src, mustCandidates(t, DefaultCandidates...), nil)
	b.Start()
	<-b.Ready()
	if _, ok := b.Active(); ok {
		t.Fatal("bridge reports a hotkey without an X server")
	}
	stopWithin(t, b)
}

func TestX11SourceStopReleasesGrab(t *testing.T) {
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no X display")
	}
	conn := NewSource(nil)
	if err := conn.Open(); err != nil {
		t.Skipf("X server unreachable: %v", err)
	}
	conn.Wake()

	src := NewSource(nil).(*x11Source)
	b := NewBridge(src, mustCandidates(t, "Ctrl+Alt+Shift+F12", "Ctrl+Alt+Shift+F11"), nil)
	b.Start()
	<-b.Ready()
	stopWithin(t, b)

	src.mu.Lock()
	defer src.mu.Unlock()
	if !src.closed || len(src.grabs) != 0 {
		t.Fatalf("after Stop: closed=%v grabs=%v", src.closed, src.grabs)
	}
}

func TestX11Mods(t *testing.T) {
	tests := []struct {
		in   Modifier
		want uint16
	}{
		{0, 0},
		{ModCtrl, xproto.ModMaskControl},
		{ModCtrl | ModShift, xproto.ModMaskControl | xproto.ModMaskShift},
		{ModAlt | ModSuper, xproto.ModMask1 | xproto.ModMask4},
	}
	for _, tt := range tests {
		if got := x11Mods(tt.in); got != tt.want {
			t.Errorf("x11Mods(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
	for in, want := range map[string]string{"F2": "F2", "C": "c", "9": "9"} {
		if got := x11KeyName(in); got != want {
			t.Errorf("x11KeyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestX11MatchIgnoresLockModifiers(t *testing.T) {
	src := &x11Source{grabs: map[Binding]x11Grab{
		{Mods: ModCtrl, Key: "F2"}: {mods: xproto.ModMaskControl, keycodes: []xproto.Keycode{68}},
	}}
	ev := xproto.KeyPressEvent{Detail: 68, State: xproto.ModMaskControl | xproto.ModMaskLock | xproto.ModMask2}
	if b, ok := src.match(ev); !ok || b.String() != "Ctrl+F2" {
		t.Fatalf("match = %v, %v", b, ok)
	}
	ev.State = xproto.ModMaskLock
	if _, ok := src.match(ev); ok {
		t.Fatal("matched without Ctrl held")
	}
}
