// Package wiki builds target wiki URLs from a game profile and an optional
// search term.
package wiki

import (
	"net/url"
	"strings"

	"game-wiki-overlay/internal/models"
)

const queryPlaceholder = "{query}"

// Build derives the target URL. An empty searchTerm means "no search"; so
// does a profile with NeedsSearch unset, even when a term is supplied.
//
// The keyword map substitutes a canonical term for an exact (full-string,
// case-insensitive) alias match before encoding. Without a search template
// the encoded term is concatenated onto the base URL, which is imprecise
// for wikis expecting a query string but matches the documented fallback.
func Build(profile models.GameProfile, searchTerm string) string {
	if searchTerm == "" || !profile.NeedsSearch {
		return profile.BaseURL
	}

	term := searchTerm
	if profile.KeywordMap != nil {
		if canonical, ok := profile.KeywordMap[strings.ToLower(term)]; ok {
			term = canonical
		}
	}

	encoded := url.QueryEscape(term)
	if profile.SearchTemplate != "" {
		return strings.ReplaceAll(profile.SearchTemplate, queryPlaceholder, encoded)
	}
	return profile.BaseURL + encoded
}
