package prompt

import (
	"fmt"
	"os/exec"
	"strings"

	"game-wiki-overlay/pkg/logger"
)

// rofi exit codes: 0 = entry accepted, 1 = cancelled (escape or focus
// loss), 10 + n = -kb-custom-(n+1) pressed.
const (
	rofiExitAccepted = 0
	rofiExitCancel   = 1
	rofiExitOpenLast = 10
)

var baseArgs = []string{
	"-dmenu",
	"-lines", "0",
	"-kb-custom-1", "Alt+l",
	"-kb-accept-entry", "Return",
	"-mesg", "Enter: search | Alt+L: open last | Esc: cancel",
}

// RofiPrompt shells out to rofi in dmenu mode with no entries, which turns
// it into a one-line input box.
type RofiPrompt struct {
	log *logger.Logger
}

// NewRofiPrompt fails when rofi is not installed.
func NewRofiPrompt(log *logger.Logger) (*RofiPrompt, error) {
	if _, err := exec.LookPath("rofi"); err != nil {
		return nil, fmt.Errorf("rofi not found: %w", err)
	}
	return &RofiPrompt{log: log}, nil
}

func (r *RofiPrompt) Ask(placeholder, lastTerm string) (Result, error) {
	args := append(append([]string(nil), baseArgs...), "-p", placeholder)
	if lastTerm != "" {
		args = append(args, "-filter", lastTerm)
	}

	r.log.Debug("Opening search prompt",
		"placeholder", placeholder,
		"prefilled", lastTerm != "")

	cmd := exec.Command("rofi", args...)
	cmd.Stdin = strings.NewReader("")
	output, err := cmd.Output()
	term := strings.TrimSpace(string(output))

	code := rofiExitAccepted
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return Result{Outcome: Cancelled}, fmt.Errorf("failed to run rofi: %w", err)
		}
		code = exitErr.ExitCode()
	}

	result := decodeExit(code, term)
	r.log.Debug("Search prompt resolved",
		"outcome", result.Outcome.String(),
		"term_len", len(result.Term))
	return result, nil
}

// decodeExit maps a rofi exit code and captured input to a Result.
func decodeExit(code int, term string) Result {
	switch code {
	case rofiExitAccepted:
		return Result{Outcome: Accepted, Term: term}
	case rofiExitOpenLast:
		return Result{Outcome: OpenLast}
	default:
		// Escape, close and focus loss all land here.
		return Result{Outcome: Cancelled}
	}
}
