package poem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEAVES_DIR", dir)

	got, err := Discover("/some/configured/path")
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("got %q, want env dir %q", got, dir)
	}
}

func TestDiscoverEnvMissingIsFatal(t *testing.T) {
	t.Setenv("LEAVES_DIR", filepath.Join(t.TempDir(), "nope"))

	// An explicit override must not fall through to other candidates.
	if _, err := Discover(t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing LEAVES_DIR")
	}
}

func TestDiscoverConfigured(t *testing.T) {
	t.Setenv("LEAVES_DIR", "")
	dir := t.TempDir()

	got, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("got %q, want %q", got, dir)
	}
}

func TestDiscoverConfiguredFile(t *testing.T) {
	t.Setenv("LEAVES_DIR", "")
	f := filepath.Join(t.TempDir(), "poems")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Discover(f); err == nil {
		t.Fatal("expected an error for a non-directory path")
	}
}

func TestDiscoverDefault(t *testing.T) {
	t.Setenv("LEAVES_DIR", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	want := filepath.Join(home, "Documents", "poetry")
	if err := os.MkdirAll(want, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover("")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
