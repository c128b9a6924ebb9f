// Package config loads the layered application configuration: defaults, an
// optional config.yaml, PAIN_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/pain-gen/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (PAIN_LOG_LEVEL, ...).
const EnvPrefix = "PAIN"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Debtor struct {
		File              string `mapstructure:"file" yaml:"file"`
		StripIDSeparators bool   `mapstructure:"strip_id_separators" yaml:"strip_id_separators"`
	} `mapstructure:"debtor" yaml:"debtor"`

	Holidays struct {
		File     string `mapstructure:"file" yaml:"file"`
		National bool   `mapstructure:"national" yaml:"national"`
	} `mapstructure:"holidays" yaml:"holidays"`

	Output struct {
		Directory  string `mapstructure:"directory" yaml:"directory"`
		FilePrefix string `mapstructure:"file_prefix" yaml:"file_prefix"`
		Indent     int    `mapstructure:"indent" yaml:"indent"`
	} `mapstructure:"output" yaml:"output"`

	Validation struct {
		Strict bool `mapstructure:"strict" yaml:"strict"`
	} `mapstructure:"validation" yaml:"validation"`
}

// NewViper returns a viper instance with defaults, search paths and
// environment binding in place. A non-empty configFile replaces the search.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.pain-gen")
		v.AddConfigPath(".pain-gen")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if there is one, unmarshals and validates.
// A missing file in the search paths is not an error; an explicitly named
// file that cannot be read is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)

	v.SetDefault("debtor.file", "debtor.toml")
	v.SetDefault("debtor.strip_id_separators", false)

	v.SetDefault("holidays.file", "holidays.yaml")
	v.SetDefault("holidays.national", true)

	v.SetDefault("output.directory", ".")
	v.SetDefault("output.file_prefix", "pain001_")
	v.SetDefault("output.indent", 2)

	v.SetDefault("validation.strict", false)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != logging.FormatText && config.Log.Format != logging.FormatJSON {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Output.Indent < 0 || config.Output.Indent > 8 {
		return fmt.Errorf("output.indent must be between 0 and 8, got: %d", config.Output.Indent)
	}

	if strings.ContainsAny(config.Output.FilePrefix, `/\`) {
		return fmt.Errorf("output.file_prefix must not contain path separators, got: %s", config.Output.FilePrefix)
	}

	if strings.TrimSpace(config.Output.Directory) == "" {
		return fmt.Errorf("output.directory must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from config.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
