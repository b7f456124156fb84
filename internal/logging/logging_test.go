package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akmonengine/lander/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "lander.log")
	cfg.Level = "info"

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debug("filtered out")
	log.Info("run ended")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "run ended") || !strings.Contains(content, "INFO") {
		t.Errorf("log file = %q, want the info entry", content)
	}
	if strings.Contains(content, "filtered out") {
		t.Errorf("log file = %q, debug entry should be filtered", content)
	}
	if !strings.Contains(content, "logging_test.go") {
		t.Errorf("log file = %q, want the caller", content)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "lander.log")
	cfg.Level = "loud"

	if _, err := New(cfg); err == nil {
		t.Error("New() should reject an unknown level")
	}
}
