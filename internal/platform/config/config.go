package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"

	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"

	envBaseURL  = "LEDGERDESK_BASE_URL"
	envStateDir = "LEDGERDESK_STATE_DIR"
	envStorage  = "LEDGERDESK_STORAGE"
	envLogLevel = "LEDGERDESK_LOG_LEVEL"
	envTrace    = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

type Config struct {
	BaseURL  string        `yaml:"base_url"`
	StateDir string        `yaml:"state_dir"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
	Trace    TraceConfig   `yaml:"trace"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// TraceConfig points at an OTLP/HTTP collector. Empty disables export.
type TraceConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// Overrides carries values set on the command line. Empty fields are ignored.
type Overrides struct {
	ConfigFile string
	StateDir   string
	BaseURL    string
	LogLevel   string
}

func Default() Config {
	stateDir := ".ledgerdesk"
	if dir, err := os.UserConfigDir(); err == nil {
		stateDir = filepath.Join(dir, "ledgerdesk")
	}
	return Config{
		BaseURL:  DefaultBaseURL,
		StateDir: stateDir,
		Storage:  StorageConfig{Driver: DriverSQLite},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

// Load resolves configuration from defaults, the YAML file, a local .env,
// the environment and finally the command line, in that order.
func Load(overrides Overrides) (Config, error) {
	cfg := Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	stateDir := firstNonEmpty(overrides.StateDir, os.Getenv(envStateDir), cfg.StateDir)
	path := overrides.ConfigFile
	if path == "" {
		path = filepath.Join(stateDir, "config.yaml")
	}
	if err := cfg.mergeFile(path, overrides.ConfigFile != ""); err != nil {
		return Config{}, err
	}

	cfg.BaseURL = firstNonEmpty(overrides.BaseURL, os.Getenv(envBaseURL), cfg.BaseURL)
	cfg.StateDir = firstNonEmpty(overrides.StateDir, os.Getenv(envStateDir), cfg.StateDir)
	cfg.Storage.Driver = firstNonEmpty(os.Getenv(envStorage), cfg.Storage.Driver)
	cfg.Log.Level = firstNonEmpty(overrides.LogLevel, os.Getenv(envLogLevel), cfg.Log.Level)
	cfg.Trace.Endpoint = strings.TrimSpace(firstNonEmpty(os.Getenv(envTrace), cfg.Trace.Endpoint))
	cfg.fillPaths()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) fillPaths() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Path == "" {
		switch c.Storage.Driver {
		case DriverFile:
			c.Storage.Path = filepath.Join(c.StateDir, "session.json")
		case DriverBolt:
			c.Storage.Path = filepath.Join(c.StateDir, "session.bolt")
		default:
			c.Storage.Path = filepath.Join(c.StateDir, "ledgerdesk.db")
		}
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.StateDir, "ledgerdesk.log")
	}
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) url: %q", c.BaseURL)
	}
	if strings.TrimSpace(c.StateDir) == "" {
		return fmt.Errorf("state dir is required")
	}
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite, DriverBolt:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Trace.Endpoint != "" {
		parsed, err := url.Parse(c.Trace.Endpoint)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("trace endpoint must be an absolute http(s) url: %q", c.Trace.Endpoint)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
