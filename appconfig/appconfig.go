// Package appconfig reads the application's yaml config file.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"crosshair-overlay/hotkey"
)

const (
	AppName  = "crosshair-overlay"
	FileName = "config.yaml"
)

type Preview struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	// Hotkeys are tried in order; the first one the OS accepts is used.
	Hotkeys       []string `yaml:"hotkeys"`
	SettingsFile  string   `yaml:"settings_file"`
	PresetsFile   string   `yaml:"presets_file"`
	ScreenshotDir string   `yaml:"screenshot_dir"`
	ClampOnLoad   bool     `yaml:"clamp_on_load"`
	Tray          bool     `yaml:"tray"`
	LogLevel      string   `yaml:"log_level"`
	Preview       Preview  `yaml:"preview"`
	Antialias     bool     `yaml:"antialias"`
}

func Default() Config {
	return Config{
		Hotkeys:       append([]string(nil), hotkey.DefaultCandidates...),
		SettingsFile:  "crosshair_settings.json",
		PresetsFile:   "crosshair_presets.json",
		ScreenshotDir: "screenshots",
		ClampOnLoad:   true,
		Tray:          true,
		LogLevel:      "info",
		Preview:       Preview{Width: 200, Height: 400},
		Antialias:     true,
	}
}

// DefaultPath is config.yaml in the per-user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Load reads path over the defaults. A missing file is created with the
// defaults. Relative file paths in the result are resolved against the
// config file's directory.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := Save(path, cfg); err != nil {
			return cfg.Resolve(filepath.Dir(path)), err
		}
		return cfg.Resolve(filepath.Dir(path)), nil
	case err != nil:
		return cfg.Resolve(filepath.Dir(path)), fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default().Resolve(filepath.Dir(path)), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fill()
	return cfg.Resolve(filepath.Dir(path)), nil
}

// Save writes cfg as yaml, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Resolve makes every relative file path absolute under dir.
func (c Config) Resolve(dir string) Config {
	for _, p := range []*string{&c.SettingsFile, &c.PresetsFile, &c.ScreenshotDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return c
}

// fill restores defaults for values an edited file blanked out.
func (c *Config) fill() {
	d := Default()
	if len(c.Hotkeys) == 0 {
		c.Hotkeys = d.Hotkeys
	}
	if c.SettingsFile == "" {
		c.SettingsFile = d.SettingsFile
	}
	if c.PresetsFile == "" {
		c.PresetsFile = d.PresetsFile
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		c.Preview = d.Preview
	}
}
