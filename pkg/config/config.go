package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"game-wiki-overlay/pkg/logger"
)

const appDirName = "game-wiki-overlay"

// Store owns the on-disk representation of settings and the game catalog.
// The in-memory values it returns are handed to the orchestrator, which is
// the sole mutator afterwards; writes flow back through SaveSettings.
type Store struct {
	log          *logger.Logger
	configDir    string
	settingsPath string
	catalogPath  string

	// shipped holds the embedded default documents (settings.json,
	// games.json); nil when the binary carries none.
	shipped fs.FS
}

// NewStore creates a store rooted at the user config directory, creating it
// if missing.
func NewStore(log *logger.Logger, shipped fs.FS) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Error("Failed to get user config directory", err)
		return nil, fmt.Errorf("failed to get user config directory: %w", err)
	}
	return NewStoreAt(filepath.Join(configDir, appDirName), log, shipped)
}

// NewStoreAt creates a store rooted at an explicit directory.
func NewStoreAt(dir string, log *logger.Logger, shipped fs.FS) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Error("Failed to create config directory", err, "path", dir)
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	log.Debug("Configuration paths",
		"config_dir", dir,
		"settings_path", filepath.Join(dir, "settings.json"),
		"catalog_path", filepath.Join(dir, "games.json"))

	return &Store{
		log:          log,
		configDir:    dir,
		settingsPath: filepath.Join(dir, "settings.json"),
		catalogPath:  filepath.Join(dir, "games.json"),
		shipped:      shipped,
	}, nil
}

// Dir returns the user-scoped configuration directory.
func (s *Store) Dir() string {
	return s.configDir
}

// SettingsPath returns the path of the persisted settings document.
func (s *Store) SettingsPath() string {
	return s.settingsPath
}

// CatalogPath returns the path of the user game catalog document.
func (s *Store) CatalogPath() string {
	return s.catalogPath
}

// writeDocument performs an atomic full-document overwrite: the bytes land
// in a temp file in the same directory and are renamed over the target, so
// a crash mid-save never leaves a truncated document behind.
func (s *Store) writeDocument(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
