package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
	if cfg.Rate != 60 {
		t.Errorf("Rate = %d, want 60", cfg.Rate)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 960 {
		t.Errorf("Window = %dx%d, want 1280x960", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	if err != nil {
		t.Errorf("Load() error = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want Default()", cfg)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Deep Dive
rate: 120
log:
  level: debug
  console: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Window.Title != "Deep Dive" {
		t.Errorf("Window.Title = %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Window.Width = %d, want the default kept", cfg.Window.Width)
	}
	if cfg.Rate != 120 {
		t.Errorf("Rate = %d, want 120", cfg.Rate)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Console {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Log.File != "logs/lander.log" {
		t.Errorf("Log.File = %q, want the default kept", cfg.Log.File)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "window: [1, 2"},
		{"wrong type", "rate: fast"},
		{"zero rate", "rate: 0"},
		{"negative width", "window:\n  width: -1"},
		{"empty assets", "assets: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))

			if err == nil {
				t.Fatal("Load() should fail")
			}
			if cfg != Default() {
				t.Errorf("Load() = %+v, want Default() alongside the error", cfg)
			}
		})
	}
}
