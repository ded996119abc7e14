package popup

import "game-wiki-overlay/internal/models"

// WebView is the embedded-browser capability the popup consumes. The
// rendering engine itself is an external collaborator; the manager only
// relies on this surface.
//
// Event callbacks may fire on engine-owned threads. Implementations must
// not assume the control thread; the manager marshals through its executor.
type WebView interface {
	LoadURL(url string) error
	Show() error
	Raise()
	Visible() bool
	Bounds() models.PopupGeometry
	SetBounds(geo models.PopupGeometry)
	Close() error

	OnLoadStarted(fn func())
	OnLoadFinished(fn func(ok bool))
	OnURLChanged(fn func(url string))
	OnRenderCrashed(fn func(reason string))
	OnClosed(fn func())
}

// Factory creates WebViews and owns the shared browsing context.
type Factory interface {
	New(geo models.PopupGeometry) (WebView, error)
	// Shutdown releases the shared browsing context. Called once during
	// application shutdown, after the last popup is closed.
	Shutdown()
}
