package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Prefs is the small amount of state remembered between runs.
type Prefs struct {
	Theme string `toml:"theme"`
}

// PrefsPath returns the default prefs file location.
func PrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "photo-rings", "prefs.toml"), nil
}

// LoadPrefs never fails: anything unreadable falls back to the dark theme.
func LoadPrefs(path string) Prefs {
	p := Prefs{Theme: ThemeDark}
	if path == "" {
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	var saved Prefs
	if _, err := toml.Decode(string(data), &saved); err != nil {
		return p
	}
	if saved.Theme == ThemeLight {
		p.Theme = ThemeLight
	}
	return p
}

func SavePrefs(path string, p Prefs) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
