package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/san-kum/torus/internal/life"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHeight      = 20
	DefaultWidth       = 100
	DefaultProbability = 0.2
	DefaultDelay       = 250 * time.Millisecond
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Height      int           `yaml:"height"`
	Width       int           `yaml:"width"`
	Probability float64       `yaml:"probability"`
	Seed        int64         `yaml:"seed"`
	Delay       time.Duration `yaml:"delay"`
	Generations int           `yaml:"generations"`
	StopOnCycle bool          `yaml:"stop_on_cycle"`
	Glyphs      GlyphConfig   `yaml:"glyphs"`
}

type GlyphConfig struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

func DefaultConfig() *Config {
	return &Config{
		Height:      DefaultHeight,
		Width:       DefaultWidth,
		Probability: DefaultProbability,
		Delay:       DefaultDelay,
		Glyphs: GlyphConfig{
			Alive: string(life.DefaultGlyphs.Alive),
			Dead:  string(life.DefaultGlyphs.Dead),
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads the file over a copy of base, so keys the file omits keep
// the values from base.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the config against what the simulation core accepts.
func (c *Config) Validate() error {
	if c.Height < life.MinDimension || c.Width < life.MinDimension {
		return fmt.Errorf("%w: grid must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, life.MinDimension, life.MinDimension, c.Height, c.Width)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("%w: probability must be in [0, 1], got %g", ErrInvalidConfig, c.Probability)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %v", ErrInvalidConfig, c.Delay)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalidConfig, c.Generations)
	}
	if _, err := c.GetGlyphs(); err != nil {
		return err
	}
	return nil
}

// GetGlyphs converts the configured glyph strings into render glyphs.
func (c *Config) GetGlyphs() (life.Glyphs, error) {
	alive, err := singleRune("alive", c.Glyphs.Alive)
	if err != nil {
		return life.Glyphs{}, err
	}
	dead, err := singleRune("dead", c.Glyphs.Dead)
	if err != nil {
		return life.Glyphs{}, err
	}
	if alive == dead {
		return life.Glyphs{}, fmt.Errorf("%w: alive and dead glyphs must differ", ErrInvalidConfig)
	}
	return life.Glyphs{Alive: alive, Dead: dead}, nil
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s glyph must be a single character, got %q", ErrInvalidConfig, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
