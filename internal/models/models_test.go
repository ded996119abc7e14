package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModifier(t *testing.T) {
	cases := []struct {
		in      string
		want    Modifier
		wantErr bool
	}{
		{"Ctrl", ModCtrl, false},
		{"ctrl", ModCtrl, false},
		{"SHIFT", ModShift, false},
		{"Alt", ModAlt, false},
		{"win", ModWin, false},
		{"Hyper", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseModifier(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseModifier(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseModifier(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseModifier(%q)", tc.in)
	}
}

func TestModifierJSONRoundTrip(t *testing.T) {
	in := []Modifier{ModCtrl, ModShift, ModAlt, ModWin}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["Ctrl","Shift","Alt","Win"]`, string(data))

	var out []Modifier
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestModifierUnmarshalRejectsUnknown(t *testing.T) {
	var m Modifier
	err := json.Unmarshal([]byte(`"Hyper"`), &m)
	assert.Error(t, err)
}

func TestHotkeyConfigNormalize(t *testing.T) {
	cfg := HotkeyConfig{
		Key:       "F1",
		Modifiers: []Modifier{ModShift, ModCtrl, ModShift, ModCtrl},
	}
	norm := cfg.Normalize()
	assert.Equal(t, []Modifier{ModShift, ModCtrl}, norm.Modifiers)
	// The original is untouched.
	assert.Len(t, cfg.Modifiers, 4)
}

func TestHotkeyConfigString(t *testing.T) {
	cfg := HotkeyConfig{Key: "F1", Modifiers: []Modifier{ModCtrl, ModShift}}
	assert.Equal(t, "Ctrl+Shift+F1", cfg.String())

	bare := HotkeyConfig{Key: "A"}
	assert.Equal(t, "A", bare.String())
}

func TestHotkeyConfigValidate(t *testing.T) {
	assert.Error(t, (&HotkeyConfig{Key: "  "}).Validate())
	assert.NoError(t, (&HotkeyConfig{Key: "F1"}).Validate())
}

func TestGameProfileValidate(t *testing.T) {
	valid := GameProfile{BaseURL: "https://wiki.example"}
	assert.NoError(t, valid.Validate())

	empty := GameProfile{}
	assert.Error(t, empty.Validate())

	badTemplate := GameProfile{
		BaseURL:        "https://wiki.example",
		SearchTemplate: "https://wiki.example/search?q=",
	}
	assert.Error(t, badTemplate.Validate())

	goodTemplate := GameProfile{
		BaseURL:        "https://wiki.example",
		SearchTemplate: "https://wiki.example/search?q={query}",
	}
	assert.NoError(t, goodTemplate.Validate())
}

func TestAppSettingsValidate(t *testing.T) {
	good := AppSettings{
		Hotkey: HotkeyConfig{Key: "F1"},
		Popup:  PopupGeometry{Left: 0, Top: 0, Width: 800, Height: 600},
	}
	assert.NoError(t, good.Validate())

	flat := good
	flat.Popup.Height = 0
	assert.Error(t, flat.Validate())
}
