// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FINANZAS_"

// Config holds the runtime settings. Every field can be overridden with a
// FINANZAS_* environment variable (FINANZAS_ADDR, FINANZAS_DATA_FILE, ...).
type Config struct {
	Addr      string `koanf:"addr"`
	DataFile  string `koanf:"data_file"`
	BackupDir string `koanf:"backup_dir"`
	RulesFile string `koanf:"rules_file"`
	LogLevel  string `koanf:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:      ":8080",
		DataFile:  "financial_data.json",
		BackupDir: ".",
		LogLevel:  "info",
	}
}

// Load layers FINANZAS_* environment variables over the defaults.
func Load() (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("loading environment: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}
