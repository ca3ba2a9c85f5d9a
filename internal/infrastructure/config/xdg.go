package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "panedrawer"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"
	dirPerm        = 0o755
	filePerm       = 0o644
)

// GetConfigDir returns $XDG_CONFIG_HOME/panedrawer (default ~/.config/panedrawer).
// With ENV=dev it returns .dev/panedrawer under the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetStateDir returns $XDG_STATE_HOME/panedrawer (default ~/.local/state/panedrawer).
func GetStateDir() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateHome, appName), nil
}

// GetLogFile returns the log file used by interactive commands.
func GetLogFile() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs", appName+".log"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}
