//go:build windows

package hotkey

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000

	wmQuit   = 0x0012
	wmHotkey = 0x0312
	wmUser   = 0x0400

	pmNoRemove = 0x0000

	vkF1 = 0x70
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

type winMsg struct {
	hwnd     windows.HWND
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       struct{ x, y int32 }
	lPrivate uint32
}

// nativeSource drives RegisterHotKey and a thread message loop.
type nativeSource struct {
	threadID atomic.Uint32

	nextID int32
	ids    map[int32]Binding
	byKey  map[Binding]int32
}

// NewSource returns the Win32 hotkey source. keys is unused on Windows.
func NewSource(keys KeyState) Source {
	return &nativeSource{ids: map[int32]Binding{}, byKey: map[Binding]int32{}}
}

func (s *nativeSource) Open() error {
	var m winMsg
	// Touching the queue makes Windows create it, so a WM_QUIT posted before
	// the first GetMessageW is not lost.
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, wmUser, wmUser, pmNoRemove)
	s.threadID.Store(windows.GetCurrentThreadId())
	return nil
}

func (s *nativeSource) Register(b Binding) error {
	vk, ok := virtualKey(b.Key)
	if !ok {
		return fmt.Errorf("%w: no virtual key for %q", ErrBadBinding, b.Key)
	}
	s.nextID++
	id := s.nextID
	r, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(winModifiers(b.Mods)|modNoRepeat), uintptr(vk))
	if r == 0 {
		return fmt.Errorf("RegisterHotKey %s: %w", b, err)
	}
	s.ids[id] = b
	s.byKey[b] = id
	return nil
}

func (s *nativeSource) Unregister(b Binding) error {
	id, ok := s.byKey[b]
	if !ok {
		return nil
	}
	delete(s.byKey, b)
	delete(s.ids, id)
	r, _, err := procUnregisterHotKey.Call(0, uintptr(id))
	if r == 0 {
		return fmt.Errorf("UnregisterHotKey %s: %w", b, err)
	}
	return nil
}

func (s *nativeSource) Receive() (Binding, error) {
	var m winMsg
	for {
		r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return Binding{}, fmt.Errorf("GetMessageW: %w", err)
		case 0:
			return Binding{}, ErrClosed
		}
		if m.message != wmHotkey {
			continue
		}
		if b, ok := s.ids[int32(m.wParam)]; ok {
			return b, nil
		}
	}
}

func (s *nativeSource) Wake() error {
	tid := s.threadID.Load()
	if tid == 0 {
		return fmt.Errorf("hotkey source not open")
	}
	r, _, err := procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
	if r == 0 {
		return fmt.Errorf("PostThreadMessageW: %w", err)
	}
	return nil
}

func winModifiers(m Modifier) uint32 {
	var out uint32
	if m&ModCtrl != 0 {
		out |= modControl
	}
	if m&ModShift != 0 {
		out |= modShift
	}
	if m&ModAlt != 0 {
		out |= modAlt
	}
	if m&ModSuper != 0 {
		out |= modWin
	}
	return out
}

func virtualKey(key string) (uint32, bool) {
	if n, ok := functionKey(key); ok {
		if n < 1 || n > 24 {
			return 0, false
		}
		return vkF1 + uint32(n-1), true
	}
	if len(key) == 1 {
		c := key[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return uint32(c), true
		}
	}
	return 0, false
}
