//go:build !windows

package wm

import "game-wiki-overlay/pkg/logger"

// ShowCursor is a no-op outside Windows: Wayland and X11 compositors manage
// cursor visibility per surface, not per process.
func ShowCursor(log *logger.Logger) {
	log.Debug("ShowCursor is a no-op on this platform")
}
