package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for fastapi-gen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.fastapi-gen/config.yaml).
	ConfigFile string

	// HomeDir is the fastapi-gen home directory (~/.fastapi-gen).
	HomeDir string
}

// DefaultPaths returns the default paths for fastapi-gen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	genHome := filepath.Join(homeDir, ".fastapi-gen")

	return &Paths{
		ConfigFile: filepath.Join(genHome, "config.yaml"),
		HomeDir:    genHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If FASTAPI_GEN_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("FASTAPI_GEN_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}
