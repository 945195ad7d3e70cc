// Package config loads the optional leaves config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user-tunable settings.
type Config struct {
	// Dir is the poems directory; empty means use the default discovery.
	Dir string

	Theme Theme
}

// Theme holds the UI colors as hex strings.
type Theme struct {
	Accent    string
	Highlight string
	Text      string
	Dim       string
}

const defaultConfigPath = "~/.config/leaves/config.toml"

func defaultTheme() Theme {
	return Theme{
		Accent:    "#F9E2AF",
		Highlight: "#CBA6F7",
		Text:      "#CDD6F4",
		Dim:       "#6C7086",
	}
}

// Load parses the config at path (the default location when path is empty),
// falling back to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Theme: defaultTheme()}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Dir   string `toml:"dir"`
		Theme struct {
			Accent    string `toml:"accent"`
			Highlight string `toml:"highlight"`
			Text      string `toml:"text"`
			Dim       string `toml:"dim"`
		} `toml:"theme"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.Dir); dir != "" {
		cfg.Dir = mustExpand(dir)
	}
	if c := strings.TrimSpace(raw.Theme.Accent); c != "" {
		cfg.Theme.Accent = c
	}
	if c := strings.TrimSpace(raw.Theme.Highlight); c != "" {
		cfg.Theme.Highlight = c
	}
	if c := strings.TrimSpace(raw.Theme.Text); c != "" {
		cfg.Theme.Text = c
	}
	if c := strings.TrimSpace(raw.Theme.Dim); c != "" {
		cfg.Theme.Dim = c
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
