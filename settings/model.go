// Package settings holds the active reticle configuration and the editing
// session that drives the settings panel.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"crosshair-overlay/reticle"
)

// Model owns the single active Config. The value is replaced wholesale on
// every change and is only written to disk by Save.
type Model struct {
	path string
	cfg  reticle.Config
}

// NewModel returns a model holding cfg whose Save target is path.
func NewModel(path string, cfg reticle.Config) *Model {
	return &Model{path: path, cfg: cfg}
}

func (m *Model) Config() reticle.Config { return m.cfg }

func (m *Model) Set(cfg reticle.Config) { m.cfg = cfg }

func (m *Model) Path() string { return m.path }

// Save writes the active config to the legacy single-config file.
func (m *Model) Save() error {
	data, err := json.Marshal(m.cfg)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(m.path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// LoadLegacy reads a flat Config file. found is false when the file does not
// exist, which is not an error. Optional fields missing from older files get
// their defaults.
func LoadLegacy(path string, clamp bool) (cfg reticle.Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return reticle.Config{}, false, nil
		}
		return reticle.Config{}, false, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return reticle.Config{}, false, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if clamp {
		cfg = cfg.Clamp()
	}
	return cfg, true, nil
}
