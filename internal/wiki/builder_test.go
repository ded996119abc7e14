package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"game-wiki-overlay/internal/models"
)

func TestBuildNoSearchTerm(t *testing.T) {
	profile := models.GameProfile{BaseURL: "https://wiki.example/valorant"}
	assert.Equal(t, "https://wiki.example/valorant", Build(profile, ""))
}

func TestBuildNeedsSearchUnsetIgnoresTerm(t *testing.T) {
	profile := models.GameProfile{BaseURL: "https://wiki.example/valorant"}
	assert.Equal(t, "https://wiki.example/valorant", Build(profile, "agents"))
}

func TestBuildTemplateEncodesSpacesAsPlus(t *testing.T) {
	profile := models.GameProfile{
		BaseURL:        "https://wiki.example",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	}
	assert.Equal(t, "https://wiki.example/search?q=fire+staff", Build(profile, "fire staff"))
}

func TestBuildKeywordMapSubstitutesExactAlias(t *testing.T) {
	profile := models.GameProfile{
		BaseURL:        "https://wiki.example",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
		KeywordMap:     map[string]string{"boss": "Bosses"},
	}
	// Full-string alias match is case-insensitive on the typed term.
	assert.Equal(t, "https://wiki.example/search?q=Bosses", Build(profile, "Boss"))
	// Per-word substitution does not happen.
	assert.Equal(t, "https://wiki.example/search?q=final+boss", Build(profile, "final boss"))
}

func TestBuildNoTemplateConcatenates(t *testing.T) {
	profile := models.GameProfile{
		BaseURL:     "https://wiki.example/",
		NeedsSearch: true,
	}
	assert.Equal(t, "https://wiki.example/a+b", Build(profile, "a b"))
}

func TestBuildEncodesReservedCharacters(t *testing.T) {
	profile := models.GameProfile{
		BaseURL:        "https://wiki.example",
		NeedsSearch:    true,
		SearchTemplate: "https://wiki.example/search?q={query}",
	}
	assert.Equal(t, "https://wiki.example/search?q=50%25+more", Build(profile, "50% more"))
}
