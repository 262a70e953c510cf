package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"ledgerdesk/internal/platform/config"
)

func TestLoadMergesFileEnvAndFlags(t *testing.T) {
	state := t.TempDir()
	raw := "base_url: https://api.example.com/api/\nstorage:\n  driver: bolt\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(state, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LEDGERDESK_LOG_LEVEL", "warn")

	cfg, err := config.Load(config.Overrides{StateDir: state})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "https://api.example.com/api" {
		t.Fatalf("expected trimmed base url from file, got %s", cfg.BaseURL)
	}
	if cfg.Storage.Driver != config.DriverBolt || cfg.Storage.Path != filepath.Join(state, "session.bolt") {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected env log level to win over file, got %s", cfg.Log.Level)
	}

	cfg, err = config.Load(config.Overrides{StateDir: state, BaseURL: "http://127.0.0.1:9000", LogLevel: "error"})
	if err != nil {
		t.Fatalf("load with flags: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:9000" || cfg.Log.Level != "error" {
		t.Fatalf("expected flags to win, got %+v", cfg)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	state := t.TempDir()
	cfg, err := config.Load(config.Overrides{StateDir: state})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Fatalf("expected default base url, got %s", cfg.BaseURL)
	}
	if cfg.Storage.Driver != config.DriverSQLite || cfg.Storage.Path != filepath.Join(state, "ledgerdesk.db") {
		t.Fatalf("unexpected default storage: %+v", cfg.Storage)
	}
	if cfg.Log.File != filepath.Join(state, "ledgerdesk.log") {
		t.Fatalf("unexpected log file: %s", cfg.Log.File)
	}
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	if _, err := config.Load(config.Overrides{StateDir: t.TempDir(), ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected missing explicit config file to fail")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	base := config.Config{BaseURL: "http://localhost:5000/api", StateDir: "/tmp/x", Storage: config.StorageConfig{Driver: config.DriverFile}}
	if err := base.Validate(); err != nil {
		t.Fatalf("base config should be valid: %v", err)
	}
	badURL := base
	badURL.BaseURL = "localhost:5000"
	if err := badURL.Validate(); err == nil {
		t.Fatalf("relative base url should fail")
	}
	badDriver := base
	badDriver.Storage.Driver = "redis"
	if err := badDriver.Validate(); err == nil {
		t.Fatalf("unknown driver should fail")
	}
}

func TestLoadTraceEndpoint(t *testing.T) {
	state := t.TempDir()
	raw := "trace:\n  endpoint: http://collector:4318\n"
	if err := os.WriteFile(filepath.Join(state, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := config.Load(config.Overrides{StateDir: state})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Trace.Endpoint != "http://collector:4318" {
		t.Fatalf("expected endpoint from file, got %q", cfg.Trace.Endpoint)
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://otel.example.com")
	cfg, err = config.Load(config.Overrides{StateDir: state})
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.Trace.Endpoint != "https://otel.example.com" {
		t.Fatalf("expected env endpoint to win, got %q", cfg.Trace.Endpoint)
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	if _, err := config.Load(config.Overrides{StateDir: state}); err == nil {
		t.Fatalf("expected relative trace endpoint to fail")
	}
}
