//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"game-wiki-overlay/internal/models"
)

// X11: Alt is Mod1, Super/Win is Mod4.
var modifierMap = map[models.Modifier]hotkey.Modifier{
	models.ModCtrl:  hotkey.ModCtrl,
	models.ModShift: hotkey.ModShift,
	models.ModAlt:   hotkey.Mod1,
	models.ModWin:   hotkey.Mod4,
}
