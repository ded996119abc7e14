package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"game-wiki-overlay/pkg/logger"
)

type Hyprland struct {
	log *logger.Logger
}

func NewHyprland(log *logger.Logger) (*Hyprland, error) {
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{log: log}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) ActiveWindowTitle() string {
	cmd := exec.Command("hyprctl", "activewindow", "-j")
	output, err := cmd.CombinedOutput()
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "output", string(output))
		return ""
	}

	if len(output) == 0 {
		return ""
	}

	var window struct {
		Class string `json:"class"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(output, &window); err != nil {
		h.log.Error("Failed to parse hyprctl output", err, "output", string(output))
		return ""
	}

	return window.Title
}
