package hotkey

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"

	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithFile(filepath.Join(t.TempDir(), "test.log")))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestParseKeyFunctionKeys(t *testing.T) {
	k, err := parseKey("F1")
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyF1, k)

	k, err = parseKey("f12")
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyF12, k)
}

func TestParseKeyNamedKeys(t *testing.T) {
	k, err := parseKey("Escape")
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyEscape, k)

	enter, err := parseKey("Enter")
	require.NoError(t, err)
	ret, err2 := parseKey("Return")
	require.NoError(t, err2)
	assert.Equal(t, ret, enter)
}

func TestParseKeyCharacters(t *testing.T) {
	k, err := parseKey("a")
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyA, k)

	k, err = parseKey("Z")
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyZ, k)

	k, err = parseKey("7")
	require.NoError(t, err)
	assert.Equal(t, hotkey.Key7, k)
}

func TestParseKeyRejectsUnknown(t *testing.T) {
	_, err := parseKey("")
	assert.Error(t, err)

	_, err = parseKey("NumLock")
	assert.Error(t, err)

	_, err = parseKey("+")
	assert.Error(t, err)
}

func TestTranslateCanonicalOrder(t *testing.T) {
	r := NewRegistrar(testLogger(t))

	cfg := models.HotkeyConfig{
		Key:       "F1",
		Modifiers: []models.Modifier{models.ModShift, models.ModCtrl},
	}
	mods, key, err := r.translate(cfg)
	require.NoError(t, err)
	assert.Equal(t, hotkey.KeyF1, key)
	// Declaration order survives translation.
	assert.Equal(t, []hotkey.Modifier{modifierMap[models.ModShift], modifierMap[models.ModCtrl]}, mods)
}

func TestTranslateDropsUnknownModifier(t *testing.T) {
	r := NewRegistrar(testLogger(t))

	cfg := models.HotkeyConfig{
		Key:       "K",
		Modifiers: []models.Modifier{models.Modifier(99), models.ModCtrl},
	}
	mods, _, err := r.translate(cfg)
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{modifierMap[models.ModCtrl]}, mods)
}

func TestTranslateDedupesModifiers(t *testing.T) {
	r := NewRegistrar(testLogger(t))

	cfg := models.HotkeyConfig{
		Key:       "K",
		Modifiers: []models.Modifier{models.ModCtrl, models.ModCtrl, models.ModAlt},
	}
	mods, _, err := r.translate(cfg)
	require.NoError(t, err)
	assert.Len(t, mods, 2)
}

func TestTranslateBadKeyFails(t *testing.T) {
	r := NewRegistrar(testLogger(t))

	_, _, err := r.translate(models.HotkeyConfig{Key: "NoSuchKey"})
	assert.Error(t, err)
}
