package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".quizbank"
	ConfigFileName = "config.yml"
)

// ErrConfigNotFound indicates no config file exists in the directory tree.
var ErrConfigNotFound = errors.New("config not found")

// ConfigDir returns the .quizbank directory under the repo root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns the full config file path under the repo root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// RepoRootFromConfigPath derives the repo root from a config file path.
func RepoRootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}

// FindConfigPath searches upward from a directory for a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := ConfigPath(dir)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or parent directories", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), abs)
		}
		dir = parent
	}
}

// BankPath returns the absolute bank directory.
func (cfg Config) BankPath() string {
	return cfg.resolve(cfg.BankDir)
}

// ExamPath returns the absolute exam directory.
func (cfg Config) ExamPath() string {
	return cfg.resolve(cfg.ExamDir)
}

// LogPath returns the absolute log file path, or "" for stderr.
func (cfg Config) LogPath() string {
	if cfg.Log.File == "" {
		return ""
	}
	return cfg.resolve(cfg.Log.File)
}

func (cfg Config) resolve(path string) string {
	if filepath.IsAbs(path) || cfg.Root == "" {
		return path
	}
	return filepath.Join(cfg.Root, path)
}
