package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultLogFormat = "json"
	DefaultLogLevel  = "info"
)

// Config is the top-level configuration. Fields map 1:1 to
// lighthouse.example.yaml.
type Config struct {
	// Pages is the list of pages whose Speed Index is audited.
	Pages []Page `yaml:"pages"`

	// Output is the file path the JSON report is written to.
	// Empty means stdout.
	Output string `yaml:"output"`

	// Watch re-runs audits whenever a file-backed measurement source
	// changes on disk.
	Watch bool `yaml:"watch"`

	// Logging holds log output options.
	Logging Logging `yaml:"logging"`
}

// Page describes one audited page and where its measurement comes from.
type Page struct {
	// ID is a unique, human-readable identifier for this page.
	ID string `yaml:"id"`

	// Type selects the measurement source: artifacts | exposition.
	Type string `yaml:"type"`

	// Path is the local file holding the measurement. Used by the
	// artifacts source, and by the exposition source when Endpoint is
	// empty.
	Path string `yaml:"path"`

	// Endpoint is the URL of a metrics endpoint exposing the measurement.
	// Used by the exposition source.
	Endpoint string `yaml:"endpoint"`
}

// Logging holds log output options.
type Logging struct {
	// Format is one of: json | text.
	Format string `yaml:"format"`

	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to Info.
func (l Logging) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Logging: Logging{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", cfg.Logging.Format)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug|info|warn|error, got %q", cfg.Logging.Level)
	}

	seen := make(map[string]bool, len(cfg.Pages))
	for i, p := range cfg.Pages {
		if p.ID == "" {
			return fmt.Errorf("pages[%d]: id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("pages[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true

		switch p.Type {
		case "artifacts":
			if p.Path == "" {
				return fmt.Errorf("pages[%d] %q: path is required for artifacts sources", i, p.ID)
			}
		case "exposition":
			if p.Path == "" && p.Endpoint == "" {
				return fmt.Errorf("pages[%d] %q: path or endpoint is required for exposition sources", i, p.ID)
			}
		default:
			return fmt.Errorf("pages[%d] %q: unknown type %q", i, p.ID, p.Type)
		}
	}
	return nil
}
