// Package modelfile resolves paths to model weight files before they are
// handed to the engine.
package modelfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve expands a leading '~', makes the path absolute, and verifies that a
// regular file exists there. Whether the payload is a valid GGUF file is left
// to the engine, which rejects corrupt weights itself.
func Resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty model path")
	}
	p, err := expandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat model: %w", err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("model path is a directory: %s", abs)
	}
	return abs, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/models/tiny.gguf
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
