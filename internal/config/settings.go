package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SettingsFileName is the settings file looked up in the working directory
// and in $HOME/.config/bdtax when no explicit path is given.
const SettingsFileName = "bdtax"

// EnvPrefix prefixes environment overrides, e.g. BDTAX_LOGGING_LEVEL=debug
const EnvPrefix = "BDTAX"

// Settings holds application settings, as opposed to bracket tables
type Settings struct {
	Brackets string        `mapstructure:"brackets"` // bracket table file; empty uses the built-in table
	Language string        `mapstructure:"language"` // en, bn
	Format   string        `mapstructure:"format"`   // console, json, csv, yaml
	Logging  LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Language: "en",
		Format:   "console",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault("brackets", d.Brackets)
	v.SetDefault("language", d.Language)
	v.SetDefault("format", d.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_file", d.Logging.OutputFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads settings from path, or searches for bdtax.yaml when path
// is empty. A missing settings file is not an error in search mode.
// Environment variables override file values.
func LoadSettings(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	} else {
		v.SetConfigName(SettingsFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/bdtax")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}
