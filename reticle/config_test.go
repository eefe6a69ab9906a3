package reticle

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestUnmarshalLegacyConfigDefaults(t *testing.T) {
	legacy := `{
  "color": {"r": 0, "g": 255, "b": 0, "a": 255},
  "outline_color": {"r": 0, "g": 0, "b": 0, "a": 255},
  "line_thickness": 2,
  "crosshair_length": 8,
  "crosshair_gap": 2,
  "outline_enabled": true,
  "outline_thickness": 1
}`
	var cfg Config
	if err := json.Unmarshal([]byte(legacy), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Style != StyleCross {
		t.Errorf("Style = %v, want cross", cfg.Style)
	}
	if cfg.DotSize != DefaultDotSize {
		t.Errorf("DotSize = %d, want %d", cfg.DotSize, DefaultDotSize)
	}
	if cfg.Length != 8 || cfg.Gap != 2 || !cfg.OutlineEnabled {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestConfigJSONUsesStyleNames(t *testing.T) {
	cfg := crossConfig()
	cfg.Style = StyleDot
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"crosshair_style":"dot"`) {
		t.Errorf("expected dot style in %s", data)
	}

	var back Config
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v != %+v", back, cfg)
	}
}

func TestUnmarshalRejectsUnknownStyle(t *testing.T) {
	var cfg Config
	err := json.Unmarshal([]byte(`{"crosshair_style": "star"}`), &cfg)
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestValidateAndClamp(t *testing.T) {
	cfg := crossConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(valid) = %v", err)
	}

	bad := cfg
	bad.LineThickness = 42
	bad.Gap = -3
	bad.Color.R = 300
	bad.DotSize = 1
	if err := bad.Validate(); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Validate(bad) = %v, want ErrOutOfRange", err)
	}

	fixed := bad.Clamp()
	if err := fixed.Validate(); err != nil {
		t.Fatalf("Validate(clamped) = %v", err)
	}
	if fixed.LineThickness != MaxLineThickness || fixed.Gap != MinGap || fixed.Color.R != 255 || fixed.DotSize != MinDotSize {
		t.Errorf("unexpected clamp result %+v", fixed)
	}
	if cfg.Clamp() != cfg {
		t.Error("Clamp changed an in-range config")
	}
}

func TestHexAndPalette(t *testing.T) {
	c, err := ParseHex("ffa500")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != (Color{R: 255, G: 165, B: 0, A: 255}) {
		t.Errorf("ParseHex = %+v", c)
	}
	if c.Hex() != "#FFA500" {
		t.Errorf("Hex = %s", c.Hex())
	}
	if PaletteName(c) != "Orange" {
		t.Errorf("PaletteName = %q, want Orange", PaletteName(c))
	}
	if _, err := ParseHex("#12345"); err == nil {
		t.Error("expected error for short hex")
	}

	green := Color{G: 255, A: 128}
	next := StepPalette(green, 1)
	if PaletteName(next) != "Red" || next.A != 128 {
		t.Errorf("StepPalette(green, 1) = %+v", next)
	}
	if prev := StepPalette(green, -1); PaletteName(prev) != "Black" {
		t.Errorf("StepPalette(green, -1) = %+v", prev)
	}
	if first := StepPalette(Color{R: 1, G: 2, B: 3, A: 255}, 1); PaletteName(first) != "Green" {
		t.Errorf("StepPalette(custom, 1) = %+v", first)
	}
}
