package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/alveo.log"`
}

// ExportConfig contains defaults for the export pipeline.
type ExportConfig struct {
	// InputPattern is the glob used when discovering instrument files in
	// an input directory.
	InputPattern string `yaml:"input_pattern" envconfig:"INPUT_PATTERN" default:"*.txt"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables take precedence.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = *fileCfg
		}
	}

	if err := envconfig.Process("ALVEO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills fields the env and file layers left empty.
// envconfig only applies struct tag defaults when the env var is unset
// AND the field is zero, so a file-provided value survives.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "console"
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = "logs/alveo.log"
	}
	if cfg.Export.InputPattern == "" {
		cfg.Export.InputPattern = "*.txt"
	}
}

// validate checks configuration values.
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}

	return nil
}
