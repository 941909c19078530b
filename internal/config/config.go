package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// ReportConfig controls dataset generation and report output.
type ReportConfig struct {
	OutputDir   string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"output"`
	Title       string `yaml:"title" envconfig:"TITLE" default:"Pharmacy Procurement Report"`
	Orders      int    `yaml:"orders" envconfig:"ORDERS" default:"100"`
	Seed        int64  `yaml:"seed" envconfig:"SEED" default:"42"`
	HistoryDays int    `yaml:"history_days" envconfig:"HISTORY_DAYS" default:"180"`
	TopDrugs    int    `yaml:"top_drugs" envconfig:"TOP_DRUGS" default:"5"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text"`
}

// ConfigFile is the optional YAML overlay read from the working directory.
const ConfigFile = "rxreport.yaml"

// Load loads configuration from environment variables and the optional
// config file. File values override environment values.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("RXREPORT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(ConfigFile); err == nil {
		if err := loadFromFile(ConfigFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks that the configuration values are usable.
func (c *Config) validate() error {
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report output_dir must not be empty")
	}
	if c.Report.Orders <= 0 {
		return fmt.Errorf("report orders must be positive, got %d", c.Report.Orders)
	}
	if c.Report.HistoryDays <= 0 {
		return fmt.Errorf("report history_days must be positive, got %d", c.Report.HistoryDays)
	}
	if c.Report.TopDrugs <= 0 {
		return fmt.Errorf("report top_drugs must be positive, got %d", c.Report.TopDrugs)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	return nil
}

// NewLogger builds the application logger from the logging configuration.
func NewLogger(cfg LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
