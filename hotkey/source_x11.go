//go:build linux

package hotkey

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// modMask covers the modifiers a binding can name. Lock and NumLock are
// grabbed through xevent.IgnoreMods and masked out when matching.
const modMask = xproto.ModMaskShift | xproto.ModMaskControl | xproto.ModMask1 | xproto.ModMask4

type x11Grab struct {
	mods     uint16
	keycodes []xproto.Keycode
}

// x11Source grabs keys on the root window of its own X connection. Wake
// closes the connection, which ends WaitForEvent and releases every grab
// server-side.
type x11Source struct {
	mu     sync.Mutex
	xu     *xgbutil.XUtil
	root   xproto.Window
	closed bool
	grabs  map[Binding]x11Grab
}

// NewSource returns the X11 hotkey source. keys is unused here.
func NewSource(keys KeyState) Source {
	return &x11Source{grabs: make(map[Binding]x11Grab)}
}

func (s *x11Source) Open() error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	keybind.Initialize(xu)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		xu.Conn().Close()
		return ErrClosed
	}
	s.xu, s.root = xu, xu.RootWin()
	return nil
}

func (s *x11Source) Register(b Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.xu == nil || s.closed {
		return ErrClosed
	}

	keycodes := keybind.StrToKeycodes(s.xu, x11KeyName(b.Key))
	if len(keycodes) == 0 {
		return fmt.Errorf("%w: no keycode for %s", ErrUnsupported, b.Key)
	}
	mods := x11Mods(b.Mods)
	for i, kc := range keycodes {
		if err := keybind.GrabChecked(s.xu, s.root, mods, kc); err != nil {
			for _, held := range keycodes[:i+1] {
				keybind.Ungrab(s.xu, s.root, mods, held)
			}
			return fmt.Errorf("grab %s: %w", b, err)
		}
	}
	s.grabs[b] = x11Grab{mods: mods, keycodes: keycodes}
	return nil
}

func (s *x11Source) Unregister(b Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.grabs[b]
	if !ok {
		return nil
	}
	delete(s.grabs, b)
	if s.closed {
		return nil
	}
	for _, kc := range g.keycodes {
		keybind.Ungrab(s.xu, s.root, g.mods, kc)
	}
	return nil
}

func (s *x11Source) Receive() (Binding, error) {
	s.mu.Lock()
	xu := s.xu
	s.mu.Unlock()
	if xu == nil {
		return Binding{}, ErrClosed
	}

	conn := xu.Conn()
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return Binding{}, ErrClosed
		}
		press, ok := ev.(xproto.KeyPressEvent)
		if xerr != nil || !ok {
			continue
		}
		if b, ok := s.match(press); ok {
			return b, nil
		}
	}
}

func (s *x11Source) match(ev xproto.KeyPressEvent) (Binding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := ev.State & modMask
	for b, g := range s.grabs {
		if g.mods != state {
			continue
		}
		for _, kc := range g.keycodes {
			if kc == ev.Detail {
				return b, true
			}
		}
	}
	return Binding{}, false
}

func (s *x11Source) Wake() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.xu != nil {
		s.xu.Conn().Close()
	}
	return nil
}

// x11KeyName maps a binding key to its keysym name: F-keys and digits pass
// through, letters are lower-cased.
func x11KeyName(key string) string {
	if len(key) == 1 {
		return strings.ToLower(key)
	}
	return key
}

func x11Mods(m Modifier) uint16 {
	var out uint16
	if m&ModCtrl != 0 {
		out |= xproto.ModMaskControl
	}
	if m&ModShift != 0 {
		out |= xproto.ModMaskShift
	}
	if m&ModAlt != 0 {
		out |= xproto.ModMask1
	}
	if m&ModSuper != 0 {
		out |= xproto.ModMask4
	}
	return out
}
