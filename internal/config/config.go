// Package config loads server configuration.
//
// Configuration is optional: with no config file and no environment,
// Load returns working defaults. Lookup order is an explicit --config
// path, then deep-research.yaml in the working directory, then
// ~/.config/deep-research/config.yaml, with DEEP_RESEARCH_* environment
// variables overriding file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all server settings.
type Config struct {
	Archive ArchiveConfig `mapstructure:"archive"`
	Log     LogConfig     `mapstructure:"log"`
}

// ArchiveConfig controls the session archive subsystem.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig controls logging verbosity.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from cfgFile if given, otherwise from the
// default lookup paths. A missing config file is not an error.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("archive.enabled", true)
	v.SetDefault("archive.data_dir", filepath.Join(home, ".deep-research"))
	v.SetDefault("log.level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("deep-research")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "deep-research"))
		}
	}

	v.SetEnvPrefix("DEEP_RESEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
