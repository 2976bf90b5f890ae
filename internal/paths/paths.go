// Package paths resolves where worktop keeps its configuration and data.
package paths

import (
	"os"
	"path/filepath"
)

// DefaultDataDirName is the data directory created in the working
// directory when no override is active, so a dashboard checkout keeps
// its store beside it.
const DefaultDataDirName = ".worktop-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "WORKTOP_CONFIG_DIR"
	EnvDataDir   = "WORKTOP_DATA_DIR"
)

// userConfigDir is swapped out in tests.
var userConfigDir = os.UserConfigDir

// DefaultConfigDir returns the per-user configuration directory:
// $XDG_CONFIG_HOME/worktop (falling back to ~/.config/worktop) on Linux,
// ~/Library/Application Support/worktop on macOS, %AppData%\worktop on
// Windows. os.UserConfigDir carries the per-platform lookup, including
// the XDG fallback chain.
func DefaultConfigDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "worktop"), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > WORKTOP_CONFIG_DIR env > DefaultConfigDir().
// The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config.yaml data_dir > WORKTOP_DATA_DIR env >
// $(CWD)/.worktop-db. The result is always absolute.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
