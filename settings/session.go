package settings

import (
	"fmt"
	"strings"

	"crosshair-overlay/preset"
	"crosshair-overlay/reticle"
)

// Presets is the part of preset.Store the session needs.
type Presets interface {
	Names() []string
	Has(name string) bool
	Get(name string) reticle.Config
	SaveAsNew(name string, cfg reticle.Config) error
	Delete(name string) error
	Rename(oldName, newName string) error
}

// Session mediates the preset store, the model and the renderer for the
// settings panel. It is owned by the UI goroutine.
type Session struct {
	presets Presets
	model   *Model

	indicator string
	preview   []reticle.Primitive
	width     int
	height    int
	revision  uint64
}

// NewSession builds a session whose preview is rendered at w×h.
func NewSession(presets Presets, model *Model, w, h int) *Session {
	s := &Session{presets: presets, model: model, width: w, height: h}
	s.Refresh()
	return s
}

func (s *Session) Config() reticle.Config { return s.model.Config() }

// Indicator is the selected preset name, or preset.Custom when the active
// config matches none.
func (s *Session) Indicator() string { return s.indicator }

func (s *Session) Preview() []reticle.Primitive { return s.preview }

func (s *Session) PreviewSize() (int, int) { return s.width, s.height }

// Revision changes every time the config, indicator or preview changes.
func (s *Session) Revision() uint64 { return s.revision }

// Edit applies fn to a copy of the active config and installs the result.
func (s *Session) Edit(fn func(*reticle.Config)) {
	cfg := s.model.Config()
	fn(&cfg)
	s.SetConfig(cfg)
}

// SetConfig replaces the active config and recomputes the indicator.
func (s *Session) SetConfig(cfg reticle.Config) {
	s.model.Set(cfg)
	s.indicator = s.match(cfg)
	s.rerender()
}

// SelectPreset makes the named preset active. It reports false, changing
// nothing, when the store has no such preset.
func (s *Session) SelectPreset(name string) bool {
	if !s.presets.Has(name) {
		return false
	}
	s.model.Set(s.presets.Get(name))
	s.indicator = name
	s.rerender()
	return true
}

// StepPreset selects the preset delta places away from the current one,
// wrapping at either end. From Custom, stepping forward selects the first
// preset and stepping back the last.
func (s *Session) StepPreset(delta int) {
	names := s.presets.Names()
	if len(names) == 0 || delta == 0 {
		return
	}
	idx := -1
	for i, n := range names {
		if n == s.indicator {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(names) - 1
	default:
		next = ((idx+delta)%len(names) + len(names)) % len(names)
	}
	s.SelectPreset(names[next])
}

// ResetToDefault loads the "Default Green" built-in.
func (s *Session) ResetToDefault() {
	s.model.Set(preset.Default())
	s.indicator = preset.DefaultGreen
	s.rerender()
}

// Refresh recomputes the indicator and preview from the current state, for
// use after the store changed underneath the session.
func (s *Session) Refresh() {
	s.indicator = s.match(s.model.Config())
	s.rerender()
}

// Resize renders the preview at a new size.
func (s *Session) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.rerender()
}

// SaveAsPreset stores the active config under name and selects it. Names
// are trimmed the same way the store trims them.
func (s *Session) SaveAsPreset(name string) error {
	if err := s.presets.SaveAsNew(name, s.model.Config()); err != nil {
		return err
	}
	s.indicator = strings.TrimSpace(name)
	s.revision++
	return nil
}

// DeleteSelected removes the selected preset. The active config is kept and
// the indicator is recomputed against what remains.
func (s *Session) DeleteSelected() error {
	if s.indicator == preset.Custom {
		return fmt.Errorf("%q: %w", preset.Custom, preset.ErrNotFound)
	}
	if err := s.presets.Delete(s.indicator); err != nil {
		return err
	}
	s.Refresh()
	return nil
}

// RenameSelected renames the selected preset and keeps it selected.
func (s *Session) RenameSelected(newName string) error {
	if s.indicator == preset.Custom {
		return fmt.Errorf("%q: %w", preset.Custom, preset.ErrNotFound)
	}
	if err := s.presets.Rename(s.indicator, newName); err != nil {
		return err
	}
	s.indicator = strings.TrimSpace(newName)
	s.revision++
	return nil
}

// SaveSettings writes the active config to the legacy settings file.
func (s *Session) SaveSettings() error {
	return s.model.Save()
}

// match returns the first preset, in store order, whose config equals cfg.
func (s *Session) match(cfg reticle.Config) string {
	for _, name := range s.presets.Names() {
		if s.presets.Get(name) == cfg {
			return name
		}
	}
	return preset.Custom
}

func (s *Session) rerender() {
	s.preview = reticle.Render(s.model.Config(), s.width, s.height)
	s.revision++
}
