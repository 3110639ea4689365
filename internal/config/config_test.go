package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Images) != 19 {
		t.Errorf("len(Images) = %d, want 19", len(cfg.Images))
	}
	cfg.Images[0] = "changed.jpg"
	if DefaultImages[0] != "05.jpg" {
		t.Error("Default shares its image slice with DefaultImages")
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ImageDir != "images" {
		t.Errorf("ImageDir = %q, want images", cfg.ImageDir)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.toml")
	data := `
image_dir = "photos"
images = ["a.png", "b.png"]
width = 800
smooth_per_second = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ImageDir != "photos" {
		t.Errorf("ImageDir = %q, want photos", cfg.ImageDir)
	}
	if len(cfg.Images) != 2 || cfg.Images[1] != "b.png" {
		t.Errorf("Images = %v", cfg.Images)
	}
	if cfg.Width != 800 || cfg.Height != WindowHeight {
		t.Errorf("size = %dx%d, want 800x%d", cfg.Width, cfg.Height, WindowHeight)
	}
	if !cfg.SmoothPerSecond {
		t.Error("SmoothPerSecond not set")
	}
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("images = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"no images", func(c *Config) { c.Images = nil }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if got := LoadPrefs(path); got.Theme != ThemeDark {
		t.Errorf("missing prefs theme = %q, want dark", got.Theme)
	}
	if err := SavePrefs(path, Prefs{Theme: ThemeLight}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadPrefs(path); got.Theme != ThemeLight {
		t.Errorf("theme = %q, want light", got.Theme)
	}
}

func TestLoadPrefsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "sepia"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := LoadPrefs(path); got.Theme != ThemeDark {
		t.Errorf("theme = %q, want dark", got.Theme)
	}
}
