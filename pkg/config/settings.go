package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"game-wiki-overlay/internal/models"
)

const shippedSettingsName = "settings.json"

// LoadSettings loads application settings with the fallback cascade:
// user document -> shipped default -> hardcoded default. Corruption is
// recovered locally by regenerating defaults over the broken document and
// is never surfaced to the caller.
func (s *Store) LoadSettings() *models.AppSettings {
	data, err := os.ReadFile(s.settingsPath)
	switch {
	case err == nil:
		settings, parseErr := decodeSettings(data)
		if parseErr == nil {
			s.log.Info("Settings loaded",
				"path", s.settingsPath,
				"hotkey", settings.Hotkey.String())
			return settings
		}
		s.log.Error("User settings document is corrupt, regenerating defaults",
			parseErr, "path", s.settingsPath)
		return s.persistDefaults()

	case os.IsNotExist(err):
		return s.loadFromShipped()

	default:
		s.log.Error("Failed to read settings document", err, "path", s.settingsPath)
		return s.persistDefaults()
	}
}

// loadFromShipped copies the shipped default document verbatim into the
// user scope and parses that; any failure along the way falls back to
// hardcoded defaults.
func (s *Store) loadFromShipped() *models.AppSettings {
	if s.shipped == nil {
		s.log.Info("No settings document found, creating hardcoded defaults")
		return s.persistDefaults()
	}

	data, err := fs.ReadFile(s.shipped, shippedSettingsName)
	if err != nil {
		s.log.Debug("No shipped settings document", "error", err)
		return s.persistDefaults()
	}

	if err := s.writeDocument(s.settingsPath, data); err != nil {
		s.log.Error("Failed to copy shipped settings into user scope", err,
			"path", s.settingsPath)
		return s.persistDefaults()
	}
	s.log.Info("Copied shipped default settings", "path", s.settingsPath)

	settings, parseErr := decodeSettings(data)
	if parseErr != nil {
		s.log.Error("Shipped settings document is invalid", parseErr)
		return s.persistDefaults()
	}
	return settings
}

// persistDefaults writes the hardcoded defaults over the user document
// (best effort) and returns them. A save failure degrades to in-memory
// defaults rather than an error.
func (s *Store) persistDefaults() *models.AppSettings {
	defaults := DefaultSettings()
	if err := s.SaveSettings(defaults); err != nil {
		s.log.Error("Failed to persist default settings", err)
	}
	return defaults
}

// SaveSettings performs a full-document overwrite of the user settings; the
// in-memory AppSettings is the single source of truth at save time.
func (s *Store) SaveSettings(settings *models.AppSettings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := s.writeDocument(s.settingsPath, data); err != nil {
		s.log.Error("Failed to save settings", err, "path", s.settingsPath)
		return err
	}

	s.log.Debug("Settings saved", "path", s.settingsPath)
	return nil
}

func decodeSettings(data []byte) (*models.AppSettings, error) {
	var settings models.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.Hotkey = settings.Hotkey.Normalize()
	return &settings, nil
}
