// Package matcher maps an active window title to a game profile.
//
// Matching is deliberately naive: the catalog key must occur as a
// case-insensitive substring of the title. Process-based matching is a known
// limitation, not a defect.
package matcher

import (
	"strings"

	"game-wiki-overlay/internal/models"
)

// Match returns the first catalog entry whose key occurs in the active
// window title, in catalog document order. An empty title never matches.
func Match(activeTitle string, catalog *models.GameCatalog) (string, models.GameProfile, bool) {
	if activeTitle == "" || catalog == nil {
		return "", models.GameProfile{}, false
	}

	title := strings.ToLower(activeTitle)
	for _, key := range catalog.Keys() {
		if strings.Contains(title, strings.ToLower(key)) {
			profile, _ := catalog.Get(key)
			return key, profile, true
		}
	}
	return "", models.GameProfile{}, false
}
