package notify

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

type notificationTool struct {
	name         string
	buildCommand func(tool string, title string, message string, nType NotificationType) *exec.Cmd
}

var notificationTools = []notificationTool{
	{
		name: "dunstify",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
				title += " Error"
			}
			return exec.Command(tool, "-u", urgency, "-t", "5000", title, message)
		},
	},
	{
		name: "notify-send",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
				title += " Error"
			}
			return exec.Command(tool, "-u", urgency, title, message)
		},
	},
	{
		name: "zenity",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			flag := "--info"
			if nType == Error {
				flag = "--error"
			}
			return exec.Command(tool, flag, "--text", message, "--title", title)
		},
	},
}

func (n *Service) trySystemNotification(title string, message string, nType NotificationType) error {
	for _, tool := range notificationTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		cmd := tool.buildCommand(tool.name, title, message, nType)
		if err := cmd.Run(); err == nil {
			n.log.Debug("Notification sent",
				"tool", tool.name,
				"type", nType)
			return nil
		}
	}
	return fmt.Errorf("no notification tools available")
}

func (n *Service) writeToLogFile(title string, message string, nType NotificationType) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	typeStr := "INFO"
	if nType == Error {
		typeStr = "ERROR"
	}

	logPath := filepath.Join(home, ".game-wiki-overlay-notifications.log")
	line := fmt.Sprintf("[%s] %s - %s: %s\n",
		time.Now().Format(time.RFC3339), title, typeStr, message)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open notification log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write notification log: %w", err)
	}
	return nil
}
