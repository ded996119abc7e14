package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameCatalogPreservesDocumentOrder(t *testing.T) {
	doc := `{
		"Zebra Quest": {"BaseUrl": "https://wiki.example/zebra", "NeedsSearch": false},
		"Apple Saga": {"BaseUrl": "https://wiki.example/apple", "NeedsSearch": false},
		"Mango Wars": {"BaseUrl": "https://wiki.example/mango", "NeedsSearch": false}
	}`

	var catalog GameCatalog
	require.NoError(t, json.Unmarshal([]byte(doc), &catalog))

	assert.Equal(t, []string{"Zebra Quest", "Apple Saga", "Mango Wars"}, catalog.Keys())
	assert.Equal(t, 3, catalog.Len())

	profile, ok := catalog.Get("Apple Saga")
	require.True(t, ok)
	assert.Equal(t, "https://wiki.example/apple", profile.BaseURL)
}

func TestGameCatalogMarshalKeepsOrder(t *testing.T) {
	catalog := NewGameCatalog()
	catalog.Put("Second First", GameProfile{BaseURL: "https://b.example"})
	catalog.Put("Alpha Last", GameProfile{BaseURL: "https://a.example"})

	data, err := json.Marshal(catalog)
	require.NoError(t, err)

	var back GameCatalog
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"Second First", "Alpha Last"}, back.Keys())
}

func TestGameCatalogPutReplacesInPlace(t *testing.T) {
	catalog := NewGameCatalog()
	catalog.Put("One", GameProfile{BaseURL: "https://one.example"})
	catalog.Put("Two", GameProfile{BaseURL: "https://two.example"})
	catalog.Put("One", GameProfile{BaseURL: "https://one-updated.example"})

	assert.Equal(t, []string{"One", "Two"}, catalog.Keys())
	profile, _ := catalog.Get("One")
	assert.Equal(t, "https://one-updated.example", profile.BaseURL)
}

func TestGameCatalogRejectsNonObject(t *testing.T) {
	var catalog GameCatalog
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &catalog))
}
