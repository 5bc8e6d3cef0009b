// Package config loads the optional validator configuration. Files are
// discovered as geodata.{toml,yaml,yml} in the working directory and
// ./configs, with environment variables overriding file values. A missing
// config file is not an error; defaults describe the committed snapshots.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// Environment override variables.
const (
	EnvDataDir  = "GEODATA_DATA_DIR"
	EnvLogLevel = "GEODATA_LOG_LEVEL"
)

// Config holds the complete validator configuration.
type Config struct {
	DataDir string       `toml:"data_dir" yaml:"data_dir"`
	Rows    RowsConfig   `toml:"rows" yaml:"rows"`
	Report  ReportConfig `toml:"report" yaml:"report"`
	Log     LogConfig    `toml:"log" yaml:"log"`
}

// RowsConfig carries the exact expected row counts. A postal snapshot
// refresh updates this section, not code.
type RowsConfig struct {
	Counties       int `toml:"counties" yaml:"counties"`
	Municipalities int `toml:"municipalities" yaml:"municipalities"`
	PostalMappings int `toml:"postal_mappings" yaml:"postal_mappings"`
}

// ReportConfig holds report rendering settings.
type ReportConfig struct {
	Color bool `toml:"color" yaml:"color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration describing the committed snapshots.
func Default() Config {
	return Config{
		DataDir: "data",
		Rows: RowsConfig{
			Counties:       schema.ExpectedCounties,
			Municipalities: schema.ExpectedMunicipalities,
			PostalMappings: schema.DefaultPostalRows,
		},
		Report: ReportConfig{Color: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Discover looks for a config file in the conventional locations and loads
// the first one found, then applies environment overrides. With no file it
// returns defaults with overrides applied.
func Discover() (Config, error) {
	for _, dir := range []string{".", "configs"} {
		for _, ext := range []string{".toml", ".yaml", ".yml"} {
			path := filepath.Join(dir, "geodata"+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return Load(path)
			}
		}
	}
	cfg := Default()
	applyEnv(&cfg)
	return cfg, nil
}

// Load reads one config file, picking the format from the extension, and
// applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension", path)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
