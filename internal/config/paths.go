package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "NETUPDATE_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "netupdate.yaml"
	// ConfigDirName is the per-user and system config directory
	ConfigDirName = "netupdate"

	userConfigFile = "config.yaml"
	systemDir      = "/etc"
)

// SearchPaths returns the config file candidates in lookup order. The
// $NETUPDATE_CONFIG entry is only present when the variable is set.
func SearchPaths() []string {
	var paths []string
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths, ConfigFileName)
	for _, dir := range userConfigDirs() {
		paths = append(paths, filepath.Join(dir, ConfigDirName, userConfigFile))
	}
	return append(paths, filepath.Join(systemDir, ConfigDirName, userConfigFile))
}

// FindConfigPath returns the first existing SearchPaths entry as an
// absolute path, or "" when there is none.
func FindConfigPath() string {
	for _, path := range SearchPaths() {
		if !fileExists(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// DefaultConfigPath is where `config init` writes when given no path:
// the first per-user directory, else the working directory.
func DefaultConfigPath() string {
	if dirs := userConfigDirs(); len(dirs) > 0 {
		return filepath.Join(dirs[0], ConfigDirName, userConfigFile)
	}
	return ConfigFileName
}

// userConfigDirs is $XDG_CONFIG_HOME then ~/.config, skipping unset ones
func userConfigDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, xdg)
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}
	return dirs
}

// EnsureConfigDir creates the directory that will hold configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}

// Exists reports whether a regular file is present at path
func Exists(path string) bool {
	return fileExists(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
