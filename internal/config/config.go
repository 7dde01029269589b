// Package config loads the markup conventions and collation locale used to
// enhance tables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings read from config.toml.
type Config struct {
	MarkerClass    string
	ContainerClass string
	Placeholder    string
	Locale         string
}

const (
	defaultConfigPath     = "~/.config/sortable/config.toml"
	defaultMarkerClass    = "sortable"
	defaultContainerClass = "research-table"
	defaultPlaceholder    = "Search table..."

	// EnvConfigPath and EnvLocale override the config path and locale.
	EnvConfigPath = "SORTABLE_CONFIG"
	EnvLocale     = "SORTABLE_LOCALE"
)

// Default returns the built-in conventions.
func Default() Config {
	return Config{
		MarkerClass:    defaultMarkerClass,
		ContainerClass: defaultContainerClass,
		Placeholder:    defaultPlaceholder,
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MarkerClass    string `toml:"marker_class"`
		ContainerClass string `toml:"container_class"`
		Placeholder    string `toml:"placeholder"`
		Locale         string `toml:"locale"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.MarkerClass); v != "" {
		cfg.MarkerClass = v
	}
	if v := strings.TrimSpace(raw.ContainerClass); v != "" {
		cfg.ContainerClass = v
	}
	if v := strings.TrimSpace(raw.Placeholder); v != "" {
		cfg.Placeholder = v
	}
	cfg.Locale = strings.TrimSpace(raw.Locale)
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		c.Locale = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
