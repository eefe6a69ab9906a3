//go:build !windows && !linux && !(darwin && cgo)

package hotkey

// NewSource falls back to sampling keys. With nil keys
// every registration fails and the tray is the only way to toggle.
func NewSource(keys KeyState) Source {
	return NewPollSource(keys, DefaultPollInterval)
}
