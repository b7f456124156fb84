// Package config holds the runtime settings of the lander binary.
// Level geometry is compiled in.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the binary looks for its settings, relative to the working directory
const DefaultPath = "config/lander.yaml"

type Config struct {
	Window Window `yaml:"window"`
	// Assets is the directory holding the level images
	Assets string `yaml:"assets"`
	// Rate is the number of fixed physics steps per second
	Rate int `yaml:"rate"`
	Log  Log  `yaml:"log"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Log struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	// Console mirrors the log to stderr
	Console bool `yaml:"console"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 960,
			Title:  "Submarine Lander",
		},
		Assets: "assets",
		Rate:   60,
		Log: Log{
			File:       "logs/lander.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load reads the YAML file at path on top of Default(). A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate %d must be positive", c.Rate)
	}
	if c.Assets == "" {
		return errors.New("assets directory is empty")
	}
	return nil
}
