package wm

import (
	"fmt"
	"os/exec"
	"strings"

	"game-wiki-overlay/pkg/logger"
)

type X11 struct {
	log *logger.Logger
}

func NewX11(log *logger.Logger) (*X11, error) {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, fmt.Errorf("xdotool is required for X11 support but was not found: %w", err)
	}
	return &X11{log: log}, nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) ActiveWindowTitle() string {
	out, err := exec.Command("xdotool", "getactivewindow", "getwindowname").Output()
	if err != nil {
		x.log.Debug("xdotool could not read the active window", "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}
