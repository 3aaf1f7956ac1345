// Package config provides configuration management for rdfconvert.
//
// This package handles loading configuration from multiple sources:
//   - YAML configuration files
//   - Environment variables (with RDFCONVERT_ prefix)
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources override
// earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./rdfconvert.yaml, ~/.rdfconvert/config.yaml,
//     /etc/rdfconvert/config.yaml)
//  3. Environment variables (RDFCONVERT_ prefix)
//
// # Usage Example
//
//	cfg, err := config.Load("rdfconvert.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Force overwrite: %v\n", cfg.Convert.Force)
//
// # Environment Variables
//
// Environment variables override all other configuration sources.
// Use the RDFCONVERT_ prefix and underscores for nested keys:
//   - RDFCONVERT_CONVERT_FORCE=true
//   - RDFCONVERT_LOGGING_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration structure for rdfconvert.
type Config struct {
	// Convert contains default values for convert command flags.
	Convert ConvertConfig `mapstructure:"convert"`

	// Logging contains logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
}

// ConvertConfig contains defaults for the convert command. Command-line
// flags override these values when set.
type ConvertConfig struct {
	// Force overwrites existing output files without prompting.
	Force bool `mapstructure:"force"`

	// Recursive walks input directories recursively.
	Recursive bool `mapstructure:"recursive"`

	// NoTree writes all output files into a flat directory instead of
	// mirroring the input directory structure.
	NoTree bool `mapstructure:"no_tree"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error). The debug
	// level enables verbose trace output as if -v were given.
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for rdfconvert.yaml in standard
// locations. A missing configuration file is not an error; defaults and
// environment variables apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("rdfconvert")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.rdfconvert")
		v.AddConfigPath("/etc/rdfconvert")
	}

	v.SetEnvPrefix("RDFCONVERT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file means defaults apply; anything else (such as
		// malformed YAML) is a real error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("convert.force", false)
	v.SetDefault("convert.recursive", false)
	v.SetDefault("convert.no_tree", false)

	v.SetDefault("logging.level", "info")
}
