package preset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"crosshair-overlay/reticle"
)

var (
	ErrNotFound    = errors.New("preset not found")
	ErrExists      = errors.New("preset name already exists")
	ErrBuiltIn     = errors.New("built-in presets cannot be changed")
	ErrInvalidName = errors.New("invalid preset name")
)

// Store is the ordered collection of named configs. Built-in presets are
// always present and never modified. Store is owned by the UI goroutine and
// is not safe for concurrent use.
type Store struct {
	filePath string
	logger   *slog.Logger

	clamp bool

	names   []string
	configs map[string]reticle.Config
}

// Option configures a Store.
type Option func(*Store)

// WithClampOnLoad pulls every config read from the file into the documented
// field ranges. Without it configs are kept exactly as stored.
func WithClampOnLoad(enabled bool) Option {
	return func(s *Store) {
		s.clamp = enabled
	}
}

// NewStore returns a store seeded with the built-in presets only. Nothing is
// read from or written to filePath until Load or Save is called.
func NewStore(filePath string, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{filePath: filePath, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

// Open is NewStore followed by Load.
func Open(filePath string, logger *slog.Logger, opts ...Option) *Store {
	s := NewStore(filePath, logger, opts...)
	s.Load()
	return s
}

func (s *Store) seed() {
	builtins := BuiltIns()
	s.names = make([]string, 0, len(builtins))
	s.configs = make(map[string]reticle.Config, len(builtins))
	for _, p := range builtins {
		s.names = append(s.names, p.Name)
		s.configs[p.Name] = p.Config
	}
}

// Load resets the store to the built-ins and overlays the custom presets
// found in the file, keeping their order. A missing file is created with the
// built-ins. Any read or parse failure leaves only the built-ins and is
// logged; Load never fails.
func (s *Store) Load() {
	s.seed()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("Preset file not found, creating it", "path", s.filePath)
			if err := s.Save(); err != nil {
				s.logger.Warn("Failed to create preset file", "path", s.filePath, "err", err)
			}
			return
		}
		s.logger.Warn("Failed to read preset file, using built-ins", "path", s.filePath, "err", err)
		return
	}

	entries, err := decodeOrdered(data)
	if err != nil {
		s.logger.Warn("Failed to parse preset file, using built-ins", "path", s.filePath, "err", err)
		return
	}

	for _, e := range entries {
		if IsBuiltIn(e.Name) {
			continue
		}
		if s.clamp {
			e.Config = e.Config.Clamp()
		}
		if _, dup := s.configs[e.Name]; !dup {
			s.names = append(s.names, e.Name)
		}
		s.configs[e.Name] = e.Config
	}
	s.logger.Debug("Loaded presets", "path", s.filePath, "count", len(s.names))
}

// Save writes every preset, in order, to the store file.
func (s *Store) Save() error {
	data, err := s.encode()
	if err != nil {
		return err
	}
	return writeAtomic(s.filePath, data)
}

// Names returns the preset names in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Has reports whether a preset called name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.configs[name]
	return ok
}

// Get returns the config stored under name. Unknown names yield the
// "Default Green" config.
func (s *Store) Get(name string) reticle.Config {
	if cfg, ok := s.configs[name]; ok {
		return cfg
	}
	return Default()
}

// SaveAsNew adds a custom preset. It never overwrites an existing name.
func (s *Store) SaveAsNew(name string, cfg reticle.Config) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if s.Has(name) {
		return fmt.Errorf("%q: %w", name, ErrExists)
	}
	s.names = append(s.names, name)
	s.configs[name] = cfg
	s.persist()
	return nil
}

// Delete removes a custom preset.
func (s *Store) Delete(name string) error {
	if IsBuiltIn(name) {
		return fmt.Errorf("%q: %w", name, ErrBuiltIn)
	}
	idx := s.index(name)
	if idx < 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	s.names = append(s.names[:idx], s.names[idx+1:]...)
	delete(s.configs, name)
	s.persist()
	return nil
}

// Rename moves a custom preset to a new name, keeping its position.
func (s *Store) Rename(oldName, newName string) error {
	if IsBuiltIn(oldName) {
		return fmt.Errorf("%q: %w", oldName, ErrBuiltIn)
	}
	idx := s.index(oldName)
	if idx < 0 {
		return fmt.Errorf("%q: %w", oldName, ErrNotFound)
	}
	newName, err := cleanName(newName)
	if err != nil {
		return err
	}
	if s.Has(newName) {
		return fmt.Errorf("%q: %w", newName, ErrExists)
	}
	s.names[idx] = newName
	s.configs[newName] = s.configs[oldName]
	delete(s.configs, oldName)
	s.persist()
	return nil
}

func (s *Store) index(name string) int {
	for i, n := range s.names {
		if n == name {
			return i
		}
	}
	return -1
}

// persist saves after a successful mutation. The in-memory change stands
// even when the write fails.
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.logger.Warn("Failed to persist presets", "path", s.filePath, "err", err)
	}
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, Custom) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return name, nil
}

// encode writes the presets as a single JSON object whose keys keep the
// store order.
func (s *Store) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.configs[name])
		if err != nil {
			return nil, fmt.Errorf("encode preset %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// decodeOrdered parses a JSON object of name -> config, preserving key order.
func decodeOrdered(data []byte) ([]Preset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("preset file must contain a JSON object")
	}

	var out []Preset
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var cfg reticle.Config
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out = append(out, Preset{Name: name, Config: cfg})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

// writeAtomic writes to a temp file then renames it over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("persist presets: %w", err)
	}
	return nil
}
