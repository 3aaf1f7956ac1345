package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadDefaults tests that default configuration values are loaded correctly.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.Convert.Force != false {
		t.Errorf("Expected default force false, got %v", cfg.Convert.Force)
	}
	if cfg.Convert.Recursive != false {
		t.Errorf("Expected default recursive false, got %v", cfg.Convert.Recursive)
	}
	if cfg.Convert.NoTree != false {
		t.Errorf("Expected default no_tree false, got %v", cfg.Convert.NoTree)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", cfg.Logging.Level)
	}
}

// TestLoadFromFile tests loading configuration from a YAML file.
func TestLoadFromFile(t *testing.T) {
	content := `convert:
  force: true
  recursive: true
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "rdfconvert.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Convert.Force {
		t.Error("Expected force true from config file")
	}
	if !cfg.Convert.Recursive {
		t.Error("Expected recursive true from config file")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

// TestEnvOverride tests that environment variables override defaults.
func TestEnvOverride(t *testing.T) {
	t.Setenv("RDFCONVERT_LOGGING_LEVEL", "warn")
	t.Setenv("RDFCONVERT_CONVERT_FORCE", "true")

	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level 'warn' from environment, got '%s'", cfg.Logging.Level)
	}
	if !cfg.Convert.Force {
		t.Error("Expected force true from environment")
	}
}

// TestInvalidLogLevel tests that validation rejects unknown log levels.
func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("RDFCONVERT_LOGGING_LEVEL", "noisy")

	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Expected error for invalid log level, got nil")
	}
}

// TestMalformedConfigFile tests that a broken YAML file is an error.
func TestMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdfconvert.yaml")
	if err := os.WriteFile(path, []byte("convert: [unclosed\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config file, got nil")
	}
}
