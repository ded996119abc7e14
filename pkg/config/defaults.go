package config

import "game-wiki-overlay/internal/models"

// DefaultSettings returns the hardcoded fallback used when neither a user
// document nor a shipped default is available, or when the user document is
// beyond repair.
func DefaultSettings() *models.AppSettings {
	return &models.AppSettings{
		Hotkey: models.HotkeyConfig{
			Key:       "F1",
			Modifiers: []models.Modifier{models.ModCtrl},
		},
		Popup: models.PopupGeometry{
			Left:   100,
			Top:    100,
			Width:  800,
			Height: 600,
		},
	}
}
