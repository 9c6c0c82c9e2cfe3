package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Missing config should not error: %v", err)
	}

	def := Default()
	if cfg != def {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mirefall.yaml")

	content := `
window:
  width: 1024
  height: 768
  title: Test Mire
assets:
  dir: art
  workers: 8
sprites:
  size: 16
  scale: 3.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("Unexpected window size: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Test Mire" {
		t.Errorf("Unexpected title: %s", cfg.Window.Title)
	}
	if cfg.Assets.Dir != "art" || cfg.Assets.Workers != 8 {
		t.Errorf("Unexpected assets config: %+v", cfg.Assets)
	}
	if cfg.Sprites.Size != 16 || cfg.Sprites.Scale != 3.0 {
		t.Errorf("Unexpected sprite config: %+v", cfg.Sprites)
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mirefall.yaml")

	content := "window:\n  title: Renamed\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Title != "Renamed" {
		t.Errorf("Expected overridden title, got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("Expected default width, got %d", cfg.Window.Width)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero window", "window:\n  width: 0\n"},
		{"zero sprite size", "sprites:\n  size: 0\n"},
		{"negative scale", "sprites:\n  scale: -1\n"},
		{"empty assets dir", "assets:\n  dir: \"\"\n"},
		{"negative workers", "assets:\n  workers: -2\n"},
		{"broken yaml", "window: [oops\n"},
	}

	for _, c := range cases {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte(c.content), 0o644); err != nil {
			t.Fatalf("%s: failed to write temp config: %v", c.name, err)
		}

		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
