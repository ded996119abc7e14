//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"game-wiki-overlay/internal/models"
)

var modifierMap = map[models.Modifier]hotkey.Modifier{
	models.ModCtrl:  hotkey.ModCtrl,
	models.ModShift: hotkey.ModShift,
	models.ModAlt:   hotkey.ModAlt,
	models.ModWin:   hotkey.ModWin,
}
