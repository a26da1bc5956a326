package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Height != 20 || cfg.Width != 100 {
		t.Errorf("expected 20x100, got %dx%d", cfg.Height, cfg.Width)
	}
	if cfg.Probability != 0.2 {
		t.Errorf("expected probability 0.2, got %f", cfg.Probability)
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Errorf("expected delay 250ms, got %v", cfg.Delay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"minimum size", func(c *Config) { c.Height, c.Width = 2, 2 }, true},
		{"single row", func(c *Config) { c.Height = 1 }, false},
		{"single column", func(c *Config) { c.Width = 1 }, false},
		{"probability above one", func(c *Config) { c.Probability = 1.5 }, false},
		{"negative probability", func(c *Config) { c.Probability = -0.1 }, false},
		{"negative delay", func(c *Config) { c.Delay = -time.Second }, false},
		{"negative generations", func(c *Config) { c.Generations = -1 }, false},
		{"empty glyph", func(c *Config) { c.Glyphs.Alive = "" }, false},
		{"multi-char glyph", func(c *Config) { c.Glyphs.Dead = ".." }, false},
		{"same glyphs", func(c *Config) { c.Glyphs.Alive, c.Glyphs.Dead = "x", "x" }, false},
		{"ascii glyphs", func(c *Config) { c.Glyphs.Alive, c.Glyphs.Dead = "#", "." }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torus.yaml")

	cfg := DefaultConfig()
	cfg.Height = 8
	cfg.Width = 12
	cfg.Seed = 99
	cfg.Delay = 40 * time.Millisecond
	cfg.Generations = 50
	cfg.Glyphs = GlyphConfig{Alive: "#", Dead: "."}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", *loaded, *cfg)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("height: 10\ndelay: 1s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Height != 10 || cfg.Width != DefaultWidth {
		t.Errorf("expected 10x%d, got %dx%d", DefaultWidth, cfg.Height, cfg.Width)
	}
	if cfg.Delay != time.Second {
		t.Errorf("expected delay 1s, got %v", cfg.Delay)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInto_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("seed: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("small")
	cfg, err := LoadInto(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Height != 12 || cfg.Width != 24 {
		t.Errorf("expected preset size 12x24, got %dx%d", cfg.Height, cfg.Width)
	}
	if cfg.Probability != 0.25 || cfg.Delay != 150*time.Millisecond {
		t.Errorf("expected preset prob 0.25 delay 150ms, got %v %v", cfg.Probability, cfg.Delay)
	}
	if cfg.Seed != 5 {
		t.Errorf("expected seed 5, got %d", cfg.Seed)
	}
	if base.Seed != 0 {
		t.Error("LoadInto modified the base config")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("small")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Height != 12 || cfg.Width != 24 {
		t.Errorf("expected 12x24, got %dx%d", cfg.Height, cfg.Width)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}

	cfg.Height = 3
	if Presets["small"].Height != 12 {
		t.Error("GetPreset returned a shared config")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
