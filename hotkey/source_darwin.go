//go:build darwin && cgo

package hotkey

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

// portableSource wraps golang.design/x/hotkey, fanning every registered
// hotkey's keydown channel into one stream.
type portableSource struct {
	events chan Binding

	wake     chan struct{}
	wakeOnce sync.Once

	regs map[Binding]*registration
}

type registration struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
	done chan struct{}
}

// NewSource returns the Carbon hotkey source. keys is unused here.
func NewSource(keys KeyState) Source {
	return &portableSource{
		events: make(chan Binding),
		wake:   make(chan struct{}),
		regs:   map[Binding]*registration{},
	}
}

func (s *portableSource) Open() error { return nil }

func (s *portableSource) Register(b Binding) error {
	if _, ok := s.regs[b]; ok {
		return nil
	}
	key, ok := keyCode(b.Key)
	if !ok {
		return fmt.Errorf("%w: %q not available on this platform", ErrBadBinding, b.Key)
	}
	hk := hotkey.New(modifiers(b.Mods), key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", b, err)
	}

	r := &registration{hk: hk, stop: make(chan struct{}), done: make(chan struct{})}
	s.regs[b] = r
	go func() {
		defer close(r.done)
		for {
			select {
			case <-r.stop:
				return
			case <-hk.Keydown():
			}
			select {
			case s.events <- b:
			case <-r.stop:
				return
			}
		}
	}()
	return nil
}

func (s *portableSource) Unregister(b Binding) error {
	r, ok := s.regs[b]
	if !ok {
		return nil
	}
	delete(s.regs, b)
	close(r.stop)
	<-r.done
	if err := r.hk.Unregister(); err != nil {
		return fmt.Errorf("unregister %s: %w", b, err)
	}
	return nil
}

func (s *portableSource) Receive() (Binding, error) {
	select {
	case <-s.wake:
		return Binding{}, ErrClosed
	case b := <-s.events:
		return b, nil
	}
}

func (s *portableSource) Wake() error {
	s.wakeOnce.Do(func() { close(s.wake) })
	return nil
}

func keyCode(key string) (hotkey.Key, bool) {
	k, ok := keyMap[key]
	return k, ok
}

var keyMap = map[string]hotkey.Key{
	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
	"F13": hotkey.KeyF13, "F14": hotkey.KeyF14, "F15": hotkey.KeyF15, "F16": hotkey.KeyF16,
	"F17": hotkey.KeyF17, "F18": hotkey.KeyF18, "F19": hotkey.KeyF19, "F20": hotkey.KeyF20,

	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD, "E": hotkey.KeyE,
	"F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH, "I": hotkey.KeyI, "J": hotkey.KeyJ,
	"K": hotkey.KeyK, "L": hotkey.KeyL, "M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO,
	"P": hotkey.KeyP, "Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX, "Y": hotkey.KeyY,
	"Z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3, "4": hotkey.Key4,
	"5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7, "8": hotkey.Key8, "9": hotkey.Key9,
}
