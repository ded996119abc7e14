// Package prompt implements the modal search-term prompt shown for
// profiles that need a search. The prompt blocks the control thread until
// resolved; no other hotkey-driven pipeline runs concurrently with it.
package prompt

// Outcome is the terminal state of a prompt interaction.
type Outcome int

const (
	// Accepted means the user submitted the typed term (possibly empty).
	Accepted Outcome = iota
	// OpenLast means "reuse the previously resolved URL verbatim".
	OpenLast
	// Cancelled aborts the hotkey pipeline for this invocation.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case OpenLast:
		return "open-last"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome plus the typed term (meaningful for Accepted only).
type Result struct {
	Outcome Outcome
	Term    string
}

// Prompt is a short-lived modal interaction producing exactly one Result.
type Prompt interface {
	// Ask blocks until the user resolves the prompt. lastTerm pre-fills
	// the input when non-empty. Losing focus counts as Cancelled.
	Ask(placeholder, lastTerm string) (Result, error)
}

// Disabled is the degraded prompt used when no prompt tool is installed.
// Every Ask accepts immediately with an empty term, so search profiles
// open their base URL instead of blocking the pipeline.
type Disabled struct{}

func (Disabled) Ask(placeholder, lastTerm string) (Result, error) {
	return Result{Outcome: Accepted}, nil
}
