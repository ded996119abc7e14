package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GameCatalog maps profile keys to profiles while preserving the document
// order of games.json. Matching tie-breaks on that order, so a plain Go map
// is not enough. The catalog is read-only after load.
type GameCatalog struct {
	keys     []string
	profiles map[string]GameProfile
}

// NewGameCatalog returns an empty catalog.
func NewGameCatalog() *GameCatalog {
	return &GameCatalog{profiles: make(map[string]GameProfile)}
}

// Put appends key with profile, replacing in place if the key exists.
func (c *GameCatalog) Put(key string, profile GameProfile) {
	if _, exists := c.profiles[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.profiles[key] = profile
}

// Get looks up a profile by its catalog key.
func (c *GameCatalog) Get(key string) (GameProfile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}

// Keys returns the profile keys in document order.
func (c *GameCatalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of profiles.
func (c *GameCatalog) Len() int {
	return len(c.keys)
}

// UnmarshalJSON decodes a profile-key -> profile mapping via the token
// stream so the document's key order survives (encoding/json maps would
// shuffle it).
func (c *GameCatalog) UnmarshalJSON(data []byte) error {
	c.keys = nil
	c.profiles = make(map[string]GameProfile)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("game catalog document must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected catalog key token %v", keyTok)
		}

		var profile GameProfile
		if err := dec.Decode(&profile); err != nil {
			return fmt.Errorf("profile %q: %w", key, err)
		}
		c.Put(key, profile)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON writes the catalog back as an object in document order.
func (c *GameCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		profileJSON, err := json.Marshal(c.profiles[key])
		if err != nil {
			return nil, err
		}
		buf.Write(profileJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
