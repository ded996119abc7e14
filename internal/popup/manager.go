// Package popup enforces the single-reusable-popup lifecycle: at most one
// live browser window, replace-on-new-request, geometry capture on close.
package popup

import (
	"fmt"

	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/pkg/logger"
)

// State tracks one popup instance through its lifetime.
type State int

const (
	StateOpening State = iota
	StateLoaded
	StateLoadFailed
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateLoaded:
		return "loaded"
	case StateLoadFailed:
		return "load-failed"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Popup pairs a WebView with its lifecycle state and current URL.
type Popup struct {
	view  WebView
	state State
	url   string
}

// State returns the popup's lifecycle state.
func (p *Popup) State() State { return p.state }

// URL returns the last URL the popup navigated to.
func (p *Popup) URL() string { return p.url }

// Visible reports whether the underlying window is visible.
func (p *Popup) Visible() bool { return p.view.Visible() }

// Raise brings the popup window to the front.
func (p *Popup) Raise() { p.view.Raise() }

// Manager owns the at-most-one live popup. All methods are control-thread
// only; WebView events arriving on engine threads are re-posted through the
// executor handed to NewManager.
type Manager struct {
	log     *logger.Logger
	factory Factory
	post    func(func())

	active    *Popup
	onClosing func(models.PopupGeometry)
}

// NewManager creates a manager. post must schedule a function onto the
// application's control thread; the manager uses it for every event coming
// back from a WebView.
func NewManager(log *logger.Logger, factory Factory, post func(func())) *Manager {
	return &Manager{log: log, factory: factory, post: post}
}

// SetOnClosing registers the geometry sink invoked when a popup closes,
// whether by the user or by replacement.
func (m *Manager) SetOnClosing(fn func(models.PopupGeometry)) {
	m.onClosing = fn
}

// Active returns the live popup, or nil.
func (m *Manager) Active() *Popup {
	return m.active
}

// Show displays targetURL in a fresh popup with the given geometry. Any
// currently active popup is closed synchronously first — its final geometry
// is captured and delivered through OnClosing before the new view exists,
// so no observation point ever sees two live popups.
func (m *Manager) Show(targetURL string, geo models.PopupGeometry) (*Popup, error) {
	if m.active != nil {
		m.log.Info("Replacing active popup", "old_url", m.active.url)
		m.CloseActive()
	}

	view, err := m.factory.New(geo)
	if err != nil {
		return nil, fmt.Errorf("failed to create popup window: %w", err)
	}

	p := &Popup{view: view, state: StateOpening, url: targetURL}
	m.wireEvents(p)

	if err := view.LoadURL(targetURL); err != nil {
		// The window exists but never got content; tear it down so the
		// session keeps its single-instance invariant.
		view.Close()
		return nil, fmt.Errorf("failed to load %s: %w", targetURL, err)
	}
	if err := view.Show(); err != nil {
		view.Close()
		return nil, fmt.Errorf("failed to show popup window: %w", err)
	}

	m.active = p
	m.log.Info("Popup opened", "url", targetURL, "state", p.state.String())
	return p, nil
}

// wireEvents connects the view's events to the state machine. Every handler
// body runs on the control thread via the executor.
func (m *Manager) wireEvents(p *Popup) {
	p.view.OnLoadStarted(func() {
		m.post(func() {
			m.log.Debug("Popup load started", "url", p.url)
		})
	})
	p.view.OnLoadFinished(func(ok bool) {
		m.post(func() {
			if p.state == StateClosing || p.state == StateClosed {
				return
			}
			if ok {
				p.state = StateLoaded
			} else {
				// Shows the error overlay; never auto-closes.
				p.state = StateLoadFailed
			}
			m.log.Debug("Popup load finished", "ok", ok, "state", p.state.String())
		})
	})
	p.view.OnURLChanged(func(url string) {
		m.post(func() {
			p.url = url
		})
	})
	p.view.OnRenderCrashed(func(reason string) {
		m.post(func() {
			if p.state == StateClosing || p.state == StateClosed {
				return
			}
			p.state = StateLoadFailed
			m.log.Error("Popup render process terminated", nil, "reason", reason)
		})
	})
	p.view.OnClosed(func() {
		m.post(func() {
			if m.active == p {
				m.finishClose(p)
				m.active = nil
			}
		})
	})
}

// CloseActive closes the live popup synchronously, capturing its final
// geometry before the close, and clears the active slot.
func (m *Manager) CloseActive() {
	p := m.active
	if p == nil {
		return
	}
	m.active = nil

	m.finishClose(p)
	if err := p.view.Close(); err != nil {
		m.log.Error("Failed to close popup window", err)
	}
}

// finishClose transitions to Closed and delivers the final geometry exactly
// once.
func (m *Manager) finishClose(p *Popup) {
	if p.state == StateClosed {
		return
	}
	p.state = StateClosing
	geo := p.view.Bounds()
	p.state = StateClosed

	m.log.Info("Popup closing",
		"url", p.url,
		"left", geo.Left, "top", geo.Top,
		"width", geo.Width, "height", geo.Height)

	if m.onClosing != nil {
		m.onClosing(geo)
	}
}
