package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Height: 20, Width: 100, Probability: 0.2, Delay: 250 * time.Millisecond,
	},
	"small": {
		Height: 12, Width: 24, Probability: 0.25, Delay: 150 * time.Millisecond,
	},
	"wide": {
		Height: 30, Width: 160, Probability: 0.2, Delay: 100 * time.Millisecond,
	},
	"sparse": {
		Height: 40, Width: 80, Probability: 0.08, Delay: 200 * time.Millisecond,
	},
	"dense": {
		Height: 40, Width: 80, Probability: 0.45, Delay: 200 * time.Millisecond,
	},
}

// GetPreset returns a copy of the named preset with default glyphs, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Height = p.Height
	cfg.Width = p.Width
	cfg.Probability = p.Probability
	cfg.Delay = p.Delay
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
