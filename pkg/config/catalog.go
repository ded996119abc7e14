package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"game-wiki-overlay/internal/models"
)

const shippedCatalogName = "games.json"

// LoadGameCatalog loads the game catalog. It never fails: any read or parse
// error yields an empty catalog, and each malformed entry is skipped and
// logged independently so one bad profile does not discard the rest.
//
// A user games.json takes precedence over the shipped default wholesale
// (last-takes-all, not a merge). On first run the shipped default is copied
// into the user scope so it can be edited in place.
func (s *Store) LoadGameCatalog() *models.GameCatalog {
	if data, err := os.ReadFile(s.catalogPath); err == nil {
		s.log.Debug("Loading game catalog from user document", "path", s.catalogPath)
		return s.decodeCatalog(data)
	} else if !os.IsNotExist(err) {
		s.log.Error("Failed to read user game catalog", err, "path", s.catalogPath)
		return models.NewGameCatalog()
	}

	if s.shipped == nil {
		s.log.Warn("No game catalog document available, catalog is empty")
		return models.NewGameCatalog()
	}

	data, err := fs.ReadFile(s.shipped, shippedCatalogName)
	if err != nil {
		s.log.Warn("No shipped game catalog", "error", err)
		return models.NewGameCatalog()
	}

	// Seed the user scope with the shipped catalog; a write failure only
	// means the next load reads the embedded copy again.
	if err := s.writeDocument(s.catalogPath, data); err != nil {
		s.log.Error("Failed to copy shipped game catalog into user scope", err,
			"path", s.catalogPath)
	} else {
		s.log.Info("Copied shipped game catalog", "path", s.catalogPath)
	}

	return s.decodeCatalog(data)
}

// decodeCatalog walks the document token by token, preserving key order and
// validating every entry on its own.
func (s *Store) decodeCatalog(data []byte) *models.GameCatalog {
	catalog := models.NewGameCatalog()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		s.log.Error("Failed to parse game catalog document", err)
		return models.NewGameCatalog()
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		s.log.Error("Game catalog document is not a JSON object",
			fmt.Errorf("unexpected token %v", tok))
		return models.NewGameCatalog()
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			s.log.Error("Failed to read game catalog key", err)
			return catalog
		}
		key, ok := keyTok.(string)
		if !ok {
			s.log.Error("Unexpected game catalog key token",
				fmt.Errorf("token %v", keyTok))
			return catalog
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			s.log.Error("Failed to read game catalog entry", err, "game", key)
			return catalog
		}

		var profile models.GameProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			s.log.Error("Skipping malformed game catalog entry", err, "game", key)
			continue
		}
		if err := profile.Validate(); err != nil {
			s.log.Error("Skipping invalid game catalog entry", err, "game", key)
			continue
		}

		catalog.Put(key, profile)
	}

	s.log.Info("Game catalog loaded", "game_count", catalog.Len())
	return catalog
}
