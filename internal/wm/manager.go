package wm

import (
	"fmt"
	"os"

	"game-wiki-overlay/pkg/logger"
)

// NewProbe selects a window probe based on the session type.
func NewProbe(log *logger.Logger) (Probe, error) {
	sessionType := os.Getenv("XDG_SESSION_TYPE")
	log.Info("Session type detected", "session", sessionType)

	switch sessionType {
	case "wayland":
		if sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"); sig != "" {
			log.Debug("Initializing compositor support", "type", "Hyprland")
			return NewHyprland(log)
		}
		return nil, fmt.Errorf("unsupported Wayland compositor: only Hyprland is supported")
	case "x11":
		log.Debug("Initializing compositor support", "type", "X11")
		return NewX11(log)
	default:
		return nil, fmt.Errorf("unsupported session type: %q", sessionType)
	}
}
