package config

import (
	"context"
	stderrors "errors"
	"os"

	"github.com/spf13/viper"

	"github.com/mrz1836/coltable/internal/errors"
)

// Load reads configuration from all available sources with proper
// precedence. Configuration is loaded in the following order (highest
// precedence first):
//  1. Environment variables (COLTABLE_* prefix)
//  2. Project config (./.coltable.yaml)
//  3. Global config (~/.coltable/config.yaml)
//  4. Built-in defaults
//
// The returned error reflects actual configuration problems, not a
// missing config file, which is the common and expected case.
//
// The context parameter is accepted for API consistency and future use,
// but is not currently used for cancellation since config file reads are
// fast local I/O operations.
func Load(_ context.Context) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COLTABLE")
	v.AutomaticEnv()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// setDefaults configures all default values on the Viper instance. These
// mirror DefaultConfig so that a config file only needs to specify the
// keys it wants to override.
func setDefaults(v *viper.Viper) {
	v.SetDefault("render.max_width", 0)
	v.SetDefault("render.term_reduce", 0)
	v.SetDefault("render.colors", true)
	v.SetDefault("render.max_out", false)
	v.SetDefault("render.symbols", "unicode")
}

// loadGlobalConfig attempts to load the global config file
// (~/.coltable/config.yaml). Returns nil if the file doesn't exist or the
// home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil //nolint:nilerr // home dir unavailable: skip global config silently
	}
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read global config file")
		}
	}
	return nil
}

// loadProjectConfig attempts to load the project config file
// (./.coltable.yaml). Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	path := ProjectConfigPath()
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read project config file")
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
