package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "slidecraft"
	if !strings.Contains(configDir, "slidecraft") {
		t.Errorf("GetConfigDir() = %v, should contain 'slidecraft'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("NewSettings().Version = %v, want 1", s.Version)
	}
	if s.Backend == nil || s.Server == nil || s.Browser == nil {
		t.Fatal("NewSettings() left a section nil")
	}
	if s.BackendURL() != DefaultBackendURL {
		t.Errorf("BackendURL() = %v, want %v", s.BackendURL(), DefaultBackendURL)
	}
	if s.GeneratorCommand() != DefaultGeneratorCommand {
		t.Errorf("GeneratorCommand() = %v, want %v", s.GeneratorCommand(), DefaultGeneratorCommand)
	}
	if s.FallbackBrowsePath() != DefaultFallbackPath {
		t.Errorf("FallbackBrowsePath() = %v, want %v", s.FallbackBrowsePath(), DefaultFallbackPath)
	}
}

func TestSettingsAccessorFallbacks(t *testing.T) {
	// Accessors must not panic and must fall back to defaults when
	// sections are missing entirely.
	s := &Settings{Version: 1}

	if s.BackendURL() != DefaultBackendURL {
		t.Errorf("BackendURL() on empty settings = %v, want default", s.BackendURL())
	}
	if s.GeneratorCommand() != DefaultGeneratorCommand {
		t.Errorf("GeneratorCommand() on empty settings = %v, want default", s.GeneratorCommand())
	}
	if s.FallbackBrowsePath() != DefaultFallbackPath {
		t.Errorf("FallbackBrowsePath() on empty settings = %v, want default", s.FallbackBrowsePath())
	}
}
