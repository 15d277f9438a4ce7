package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	ErrPathIsDirectory  = errors.New("path is a directory")
	ErrUnknownFileState = errors.New("unknown file state")
)

// GetPath returns the path to the configuration file in the user's config
// directory. It checks $XDG_CONFIG_HOME first, then falls back to ~/.config,
// and finally to a temp directory.
func GetPath() string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "scrollview", "config.yaml")
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "scrollview", "config.yaml")
	}

	tmpConfig := filepath.Join(os.TempDir(), "scrollview", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path for config",
		slog.String("path", tmpConfig),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpConfig
}

// ReadFile reads a regular file.
func ReadFile(path string) ([]byte, error) {
	pathInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	if pathInfo.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrPathIsDirectory)
	}

	if !pathInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFileState)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}
