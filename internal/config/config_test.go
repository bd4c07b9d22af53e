package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.ServerHost != "localhost" {
		t.Errorf("Expected default host localhost, got %s", config.ServerHost)
	}
	if config.ServerPort != "8080" {
		t.Errorf("Expected default port 8080, got %s", config.ServerPort)
	}
	if config.DBPath != "./dashboard.db" {
		t.Errorf("Expected default db path, got %s", config.DBPath)
	}
	if config.StaticDir != "./web/static" {
		t.Errorf("Expected default static dir, got %s", config.StaticDir)
	}
	if config.SeedOnStart {
		t.Error("Expected seeding disabled by default")
	}
	if config.ReadTimeout != 15*time.Second {
		t.Errorf("Expected default read timeout 15s, got %v", config.ReadTimeout)
	}
	if config.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown timeout 30s, got %v", config.ShutdownTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOGIDASH_PORT", "9090")
	t.Setenv("LOGIDASH_DB_PATH", "/tmp/test-dashboard.db")
	t.Setenv("LOGIDASH_SEED_ON_START", "true")
	t.Setenv("LOGIDASH_READ_TIMEOUT", "45s")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config.ServerPort != "9090" {
		t.Errorf("Expected port 9090 from env, got %s", config.ServerPort)
	}
	if config.DBPath != "/tmp/test-dashboard.db" {
		t.Errorf("Expected db path from env, got %s", config.DBPath)
	}
	if !config.SeedOnStart {
		t.Error("Expected seeding enabled from env")
	}
	if config.ReadTimeout != 45*time.Second {
		t.Errorf("Expected read timeout 45s from env, got %v", config.ReadTimeout)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("LOGIDASH_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric port")
	}
}

func TestAddress(t *testing.T) {
	config := &Config{ServerHost: "0.0.0.0", ServerPort: "8080"}
	if got := config.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Expected 0.0.0.0:8080, got %s", got)
	}
}
