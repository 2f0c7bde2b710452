package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.Root = RepoRootFromConfigPath(path)
	Normalize(&cfg)
	ApplyEnv(&cfg, nil)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. Without a config file the defaults apply,
// rooted at the working directory.
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	found, err := FindConfigPath("")
	if err == nil {
		return Load(found)
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return Config{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("get working directory: %w", err)
	}
	cfg := Default(wd)
	ApplyEnv(&cfg, nil)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
