// Package hotkey registers a system-wide key combination and turns its
// presses into toggle commands for the UI goroutine.
package hotkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a bit set of modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModShift, "Shift"},
	{ModAlt, "Alt"},
	{ModSuper, "Super"},
}

// Binding is one key combination. Key is an upper-case key name: F1-F24,
// A-Z or 0-9.
type Binding struct {
	Mods Modifier
	Key  string
}

var ErrBadBinding = errors.New("invalid hotkey")

// DefaultCandidates is the registration order used when the config names
// none.
var DefaultCandidates = []string{"F2", "Ctrl+F2", "F3", "Ctrl+Shift+C", "F11"}

// String formats b as "Ctrl+Shift+C".
func (b Binding) String() string {
	var sb strings.Builder
	for _, m := range modifierNames {
		if b.Mods&m.mod != 0 {
			sb.WriteString(m.name)
			sb.WriteByte('+')
		}
	}
	sb.WriteString(b.Key)
	return sb.String()
}

// ParseBinding reads a combination such as "ctrl+shift+c" or "F2".
func ParseBinding(s string) (Binding, error) {
	parts := strings.Split(s, "+")
	var b Binding
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == len(parts)-1 {
			key := strings.ToUpper(part)
			if !validKey(key) {
				return Binding{}, fmt.Errorf("%w %q: unknown key %q", ErrBadBinding, s, part)
			}
			b.Key = key
			continue
		}
		switch strings.ToLower(part) {
		case "ctrl", "control":
			b.Mods |= ModCtrl
		case "shift":
			b.Mods |= ModShift
		case "alt", "option":
			b.Mods |= ModAlt
		case "super", "win", "cmd":
			b.Mods |= ModSuper
		default:
			return Binding{}, fmt.Errorf("%w %q: unknown modifier %q", ErrBadBinding, s, part)
		}
	}
	return b, nil
}

// ParseCandidates parses every entry, keeping order and dropping duplicates.
func ParseCandidates(list []string) ([]Binding, error) {
	out := make([]Binding, 0, len(list))
	seen := make(map[Binding]bool, len(list))
	for _, s := range list {
		b, err := ParseBinding(s)
		if err != nil {
			return nil, err
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out, nil
}

func validKey(key string) bool {
	if n, ok := functionKey(key); ok {
		return n >= 1 && n <= 24
	}
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// functionKey returns n for "Fn".
func functionKey(key string) (int, bool) {
	if len(key) < 2 || key[0] != 'F' {
		return 0, false
	}
	n, err := strconv.Atoi(key[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
