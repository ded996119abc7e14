package wm

// Probe reads the title of the currently focused window.
type Probe interface {
	// ActiveWindowTitle returns the focused window's title, or the empty
	// string when no window is focused or the probe fails.
	ActiveWindowTitle() string
	// Name returns the probe name for logging/display.
	Name() string
}
