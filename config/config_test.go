package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test engine defaults
	if cfg.Engine.Precision != 64 {
		t.Errorf("Expected Precision=64, got %d", cfg.Engine.Precision)
	}
	if !cfg.Engine.Signed {
		t.Error("Expected Signed=true")
	}

	// Test inspector defaults
	if cfg.Inspector.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.Inspector.HistorySize)
	}
	if !cfg.Inspector.ShowBinary {
		t.Error("Expected ShowBinary=true")
	}

	// Test display defaults
	if cfg.Display.DefaultBase != "dec" {
		t.Errorf("Expected DefaultBase=dec, got %s", cfg.Display.DefaultBase)
	}
	if cfg.Display.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Display.NumberFormat)
	}

	// Test trace defaults
	if cfg.Trace.MaxEntries != 100000 {
		t.Errorf("Expected MaxEntries=100000, got %d", cfg.Trace.MaxEntries)
	}

	// Test API defaults
	if cfg.API.Port != 8080 {
		t.Errorf("Expected Port=8080, got %d", cfg.API.Port)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	// Verify path is not empty
	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	// Verify path ends with config.toml
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		// Should be absolute, or the current-directory fallback
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		// Should be in .config/strcalc or be fallback
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "strcalc" && path != "config.toml" {
			t.Errorf("Expected path in strcalc directory or fallback, got %s", path)
		}
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()

	// Verify path is not empty
	if path == "" {
		t.Error("GetLogPath returned empty string")
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "logs" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		if filepath.Base(path) != "logs" {
			t.Errorf("Expected path to end with logs, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Engine.Precision = 128
	cfg.Engine.EnableTrace = true
	cfg.Inspector.HistorySize = 500
	cfg.Display.ColorOutput = false
	cfg.API.Port = 9090

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Engine.Precision != 128 {
		t.Errorf("Expected Precision=128, got %d", loaded.Engine.Precision)
	}
	if !loaded.Engine.EnableTrace {
		t.Error("Expected EnableTrace=true")
	}
	if loaded.Inspector.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.Inspector.HistorySize)
	}
	if loaded.Display.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
	if loaded.API.Port != 9090 {
		t.Errorf("Expected Port=9090, got %d", loaded.API.Port)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Engine.Precision != 64 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[engine]
precision = "not a number"  # Invalid: should be int
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
