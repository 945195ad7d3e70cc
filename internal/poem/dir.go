package poem

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultDir is the poems directory relative to the user's home.
const defaultDir = "Documents/poetry"

// Discover finds the poems directory.
// Priority: LEAVES_DIR env var > configured path > ~/Documents/poetry.
func Discover(configured string) (string, error) {
	if env := os.Getenv("LEAVES_DIR"); env != "" {
		if err := checkDir(env); err != nil {
			return "", fmt.Errorf("LEAVES_DIR=%q: %w", env, err)
		}
		return env, nil
	}

	if configured != "" {
		if err := checkDir(configured); err != nil {
			return "", fmt.Errorf("configured poems directory %q: %w", configured, err)
		}
		return configured, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, filepath.FromSlash(defaultDir))
	if err := checkDir(dir); err != nil {
		return "", fmt.Errorf("no poems directory found (looked for %s)", dir)
	}
	return dir, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
