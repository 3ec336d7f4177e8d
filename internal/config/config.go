// Package config loads ftreport settings from .ftreport/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	Dir  = ".ftreport"
	Path = Dir + "/config.yaml"

	envLogLevel = "FTREPORT_LOG_LEVEL"
)

type Config struct {
	// FeaturesGlob selects the files `ftreport json` reads when given no paths.
	FeaturesGlob string `yaml:"features_glob"`
	// Indent pretty prints documents; empty writes compact JSON.
	Indent      string `yaml:"indent"`
	ArchivePath string `yaml:"archive_path"`
	LogLevel    string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		FeaturesGlob: "features/*.feature",
		Indent:       "",
		ArchivePath:  Dir + "/reports.db",
		LogLevel:     "warn",
	}
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if lvl := os.Getenv(envLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// Write saves cfg as YAML at path.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
