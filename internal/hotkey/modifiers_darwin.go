//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"game-wiki-overlay/internal/models"
)

// macOS: Win maps to Command.
var modifierMap = map[models.Modifier]hotkey.Modifier{
	models.ModCtrl:  hotkey.ModCtrl,
	models.ModShift: hotkey.ModShift,
	models.ModAlt:   hotkey.ModOption,
	models.ModWin:   hotkey.ModCmd,
}
