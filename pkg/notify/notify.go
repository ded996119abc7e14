package notify

import (
	"fmt"
	"os"

	"game-wiki-overlay/pkg/logger"
)

// NotificationType represents the type of notification.
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

const defaultTitle = "GameWikiOverlay"

// Service delivers best-effort desktop notifications. Failures are never
// fatal; the worst case falls through to the notification log file.
type Service struct {
	log *logger.Logger
}

// NewService creates a notification service.
func NewService(log *logger.Logger) *Service {
	return &Service{log: log}
}

// Show displays a notification of the specified type. It tries the system
// notification tools first, then the terminal, then a log file.
func (n *Service) Show(message string, nType NotificationType) error {
	if err := n.trySystemNotification(defaultTitle, message, nType); err == nil {
		return nil
	}

	if isRunningInTerminal() {
		return n.printToTerminal(message, nType)
	}

	return n.writeToLogFile(defaultTitle, message, nType)
}

func isRunningInTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func (n *Service) printToTerminal(message string, nType NotificationType) error {
	if nType == Error {
		_, err := fmt.Fprintf(os.Stderr, "\033[31m%s:\033[0m %s\n", defaultTitle, message)
		return err
	}
	_, err := fmt.Fprintf(os.Stdout, "\033[32m%s:\033[0m %s\n", defaultTitle, message)
	return err
}
