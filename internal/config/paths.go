package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/coltable/internal/errors"
)

// globalConfigDirName is the directory name under the user's home
// directory that holds the global coltable config.
const globalConfigDirName = ".coltable"

// projectConfigFileName is the project-level config file, resolved
// relative to the current working directory.
const projectConfigFileName = ".coltable.yaml"

// GlobalConfigDir returns the path to the global coltable configuration
// directory, typically ~/.coltable on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, globalConfigDirName), nil
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.coltable/config.yaml.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ProjectConfigPath returns the path to the project configuration file,
// ./.coltable.yaml relative to the current working directory.
func ProjectConfigPath() string {
	return projectConfigFileName
}
