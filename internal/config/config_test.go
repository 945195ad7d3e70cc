package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "" {
		t.Errorf("Dir = %q, want empty", cfg.Dir)
	}
	if cfg.Theme != defaultTheme() {
		t.Errorf("Theme = %+v, want defaults", cfg.Theme)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
dir = "/srv/poems"

[theme]
accent = "#FF0000"
highlight = "#00FF00"
text = "#0000FF"
dim = "#111111"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "/srv/poems" {
		t.Errorf("Dir = %q", cfg.Dir)
	}
	want := Theme{Accent: "#FF0000", Highlight: "#00FF00", Text: "#0000FF", Dim: "#111111"}
	if cfg.Theme != want {
		t.Errorf("Theme = %+v, want %+v", cfg.Theme, want)
	}
}

func TestLoadPartialThemeKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[theme]\naccent = \"#ABCDEF\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Accent != "#ABCDEF" {
		t.Errorf("Accent = %q", cfg.Theme.Accent)
	}
	if cfg.Theme.Dim != defaultTheme().Dim {
		t.Errorf("Dim = %q, want default", cfg.Theme.Dim)
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "dir = \"~/poetry\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "poetry"); cfg.Dir != want {
		t.Errorf("Dir = %q, want %q", cfg.Dir, want)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeConfig(t, "dir = not quoted\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error = %v", err)
	}
}

func TestLoadDefaultPathInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "leaves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("dir = \"/elsewhere\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "/elsewhere" {
		t.Errorf("Dir = %q, want /elsewhere", cfg.Dir)
	}
}
