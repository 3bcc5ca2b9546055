// Package config loads tint's configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the name of the configuration file.
const FileName = "tint.config"

// Config holds tint's file-backed settings. Paths in ThemesDir and
// LogFile are used as written, relative paths resolve against the
// working directory.
type Config struct {
	DefaultTheme string `json:"default_theme"` // Theme file name inside ThemesDir
	ThemesDir    string `json:"themes_dir"`    // Directory holding theme files and the manifest
	ManifestFile string `json:"manifest_file"` // Manifest file name inside ThemesDir
	LogFile      string `json:"log_file"`      // Log destination; empty means stderr
	Scheme       string `json:"scheme"`        // Default builder scheme: "dark" or "light"
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultTheme: "monokai",
		ThemesDir:    "themes.d",
		ManifestFile: "MANIFEST",
		Scheme:       "dark",
	}
}

// ThemePath returns the path of the named theme file, or of the default
// theme when name is empty.
func (c Config) ThemePath(name string) string {
	if name == "" {
		name = c.DefaultTheme
	}
	return filepath.Join(c.ThemesDir, name)
}

// ManifestPath returns the path of the manifest file.
func (c Config) ManifestPath() string {
	return filepath.Join(c.ThemesDir, c.ManifestFile)
}

// Load reads the configuration file at path. Fields absent from the
// file keep their defaults; a missing file yields pure defaults.
// Malformed JSON is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Path resolves the configuration file location: the explicit path when
// given, then tint.config in the working directory, then
// $XDG_CONFIG_HOME/tint/tint.config, then ~/.config/tint/tint.config.
// The resolved path may not exist; Load treats that as defaults.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tint", FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return FileName
	}
	return filepath.Join(home, ".config", "tint", FileName)
}
