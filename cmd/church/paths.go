package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"church/interpreter-go/pkg/driver"
)

// findManifest returns start itself when it names a file, otherwise the
// nearest church.yml at or above start.
func findManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return dir, nil
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, driver.ManifestFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", driver.ManifestFileName, origin, errManifestNotFound)
		}
		dir = parent
	}
}

func resolveChurchHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv("CHURCH_HOME")); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve CHURCH_HOME %q: %w", home, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".church"), nil
}
