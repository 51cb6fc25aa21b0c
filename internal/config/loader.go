package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Environment variable prefix for fastapi-gen configuration.
const envPrefix = "FASTAPI_GEN"

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("template", "FASTAPI_GEN_TEMPLATE")
	_ = v.BindEnv("vcs", "FASTAPI_GEN_VCS")
	_ = v.BindEnv("verbose", "FASTAPI_GEN_VERBOSE")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	// A missing config file is fine, defaults and env vars still apply
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
