// Package config loads the cost parameters and runtime settings of the
// cutquote binaries from a YAML file, with environment variables acting as
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/cutquote"
)

// CostConfig mirrors [cutquote.CostParams].
type CostConfig struct {
	Margin      float64 `yaml:"margin"`
	CostPerArea float64 `yaml:"cost_per_area"`
	BaseSpeed   float64 `yaml:"base_speed"`
	CostPerTime float64 `yaml:"cost_per_time"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxBodyBytes limits the size of a profile description.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Cost          CostConfig    `yaml:"cost"`
	Logging       LoggingConfig `yaml:"logging"`
	Server        ServerConfig  `yaml:"server"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Cost:          CostConfig{Margin: 0.1, CostPerArea: 0.75, BaseSpeed: 0.5, CostPerTime: 0.07},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		Server:        ServerConfig{Addr: ":8080", MaxBodyBytes: 1 << 20},
	}
}

// Env var names used as overrides.
const (
	EnvConfigFile  = "CUTQUOTE_CONFIG"
	EnvMargin      = "CUTQUOTE_MARGIN"
	EnvCostPerArea = "CUTQUOTE_COST_PER_AREA"
	EnvBaseSpeed   = "CUTQUOTE_BASE_SPEED"
	EnvCostPerTime = "CUTQUOTE_COST_PER_TIME"
	EnvServerAddr  = "CUTQUOTE_ADDR"
	EnvLogLevel    = "CUTQUOTE_LOG_LEVEL"
	EnvLogFormat   = "CUTQUOTE_LOG_FORMAT"
	EnvLogSource   = "CUTQUOTE_LOG_SOURCE"
	EnvLogFile     = "CUTQUOTE_LOG_FILE"
)

// Params returns the cost parameters.
func (c CostConfig) Params() cutquote.CostParams {
	return cutquote.NewCostParams(c.Margin, c.CostPerArea, c.BaseSpeed, c.CostPerTime)
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if err := c.Cost.Params().Validate(); err != nil {
		return err
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// Load reads the configuration file at path, applies defaults for missing
// values and merges environment overrides. An empty path means the file named
// by CUTQUOTE_CONFIG, if any; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			// Keys absent from the file keep their default values.
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
			normalize(&cfg)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
}

// ParseSwitch reports whether s turns a boolean setting on: 1, true, on or
// yes, in any case.
func ParseSwitch(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func applyEnvOverrides(cfg *Config) error {
	floats := []struct {
		env string
		dst *float64
	}{
		{EnvMargin, &cfg.Cost.Margin},
		{EnvCostPerArea, &cfg.Cost.CostPerArea},
		{EnvBaseSpeed, &cfg.Cost.BaseSpeed},
		{EnvCostPerTime, &cfg.Cost.CostPerTime},
	}
	for _, f := range floats {
		v := strings.TrimSpace(os.Getenv(f.env))
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.env, err)
		}
		*f.dst = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvServerAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = ParseSwitch(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
	return nil
}
