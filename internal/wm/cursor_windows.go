//go:build windows

package wm

import (
	"golang.org/x/sys/windows"

	"game-wiki-overlay/pkg/logger"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procShowCursor = user32.NewProc("ShowCursor")
)

// ShowCursor raises the system cursor display counter until the cursor is
// visible (counter >= 0). Idempotent: calling it with the cursor already
// visible leaves the counter where a single increment put it.
func ShowCursor(log *logger.Logger) {
	count, _, _ := procShowCursor.Call(1)
	for int32(count) < 0 {
		count, _, _ = procShowCursor.Call(1)
	}
	log.Debug("Cursor shown", "display_count", int32(count))
}
