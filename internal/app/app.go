// Package app wires the hotkey pipeline together: window probing, profile
// matching, search prompting, URL building and the popup lifecycle. All
// domain state lives here and is touched only by the control goroutine
// running Run's event loop.
package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"game-wiki-overlay/internal/hotkey"
	"game-wiki-overlay/internal/matcher"
	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/internal/popup"
	"game-wiki-overlay/internal/prompt"
	"game-wiki-overlay/internal/storage"
	"game-wiki-overlay/internal/wiki"
	"game-wiki-overlay/internal/wm"
	"game-wiki-overlay/pkg/config"
	"game-wiki-overlay/pkg/logger"
	"game-wiki-overlay/pkg/notify"
)

// Games that run fullscreen with a hidden cursor. A second hotkey press
// while their popup is visible raises the existing popup instead of
// resolving a new URL; the popup's content is deliberately not reconciled
// with the new request.
var cursorFixGames = map[string]struct{}{
	"counter-strike 2": {},
	"valorant":         {},
}

// controlTimeout bounds how long an outside caller (the control socket)
// waits for the control goroutine. The pipeline can legitimately be stuck
// in a modal prompt for much longer.
const controlTimeout = 5 * time.Second

// Notifier delivers best-effort user-facing messages.
type Notifier interface {
	Show(message string, nType notify.NotificationType) error
}

// Deps carries everything the orchestrator needs. Probe, Prompt, Factory
// and Notifier are interfaces so tests can substitute fakes.
type Deps struct {
	Log       *logger.Logger
	Notifier  Notifier
	Store     *config.Store
	Probe     wm.Probe
	Registrar *hotkey.Registrar
	Prompt    prompt.Prompt
	Factory   popup.Factory
	History   *storage.DB
}

// Orchestrator runs the hotkey-triggered pipeline on a single control
// goroutine. Hotkey firings and WebView events are handed off through
// channels; nothing below this type runs domain logic on foreign threads.
type Orchestrator struct {
	log       *logger.Logger
	notifier  Notifier
	store     *config.Store
	probe     wm.Probe
	registrar *hotkey.Registrar
	prompt    prompt.Prompt
	factory   popup.Factory
	popups    *popup.Manager
	history   *storage.DB

	settings      *models.AppSettings
	catalog       *models.GameCatalog
	lastSearchURL string

	hotkeyCh chan struct{}
	taskCh   chan func()
	quitCh   chan struct{}
	quitOnce sync.Once
}

func New(d Deps) *Orchestrator {
	o := &Orchestrator{
		log:       d.Log,
		notifier:  d.Notifier,
		store:     d.Store,
		probe:     d.Probe,
		registrar: d.Registrar,
		prompt:    d.Prompt,
		factory:   d.Factory,
		history:   d.History,
		// Buffered at one: rapid firings before the control goroutine
		// drains the channel coalesce into a single pipeline run.
		hotkeyCh: make(chan struct{}, 1),
		taskCh:   make(chan func(), 16),
		quitCh:   make(chan struct{}),
	}
	o.popups = popup.NewManager(d.Log, d.Factory, o.post)
	o.popups.SetOnClosing(o.handlePopupClosing)
	return o
}

// Run loads configuration, registers the hotkey and serves the event loop
// until Quit is called.
func (o *Orchestrator) Run() error {
	o.log.Info("Starting overlay services")

	o.settings = o.store.LoadSettings()
	o.catalog = o.store.LoadGameCatalog()
	o.log.Info("Configuration loaded",
		"hotkey", o.settings.Hotkey.String(),
		"games", o.catalog.Len(),
		"probe", o.probe.Name(),
	)

	if !o.registrar.Register(o.settings.Hotkey, o.fireHotkey) {
		// Degraded but alive: the control socket can still trigger the
		// pipeline and a rehotkey can recover.
		o.notifier.Show(
			fmt.Sprintf("Failed to register hotkey %s", o.settings.Hotkey.String()),
			notify.Error,
		)
	}

	for {
		select {
		case <-o.hotkeyCh:
			o.handleHotkey()
		case fn := <-o.taskCh:
			fn()
		case <-o.quitCh:
			o.shutdown()
			return nil
		}
	}
}

// Quit asks the event loop to shut down. Safe to call from any goroutine,
// more than once.
func (o *Orchestrator) Quit() {
	o.quitOnce.Do(func() { close(o.quitCh) })
}

// fireHotkey is the registrar callback. It runs on the platform listener
// goroutine and must only signal, never touch state.
func (o *Orchestrator) fireHotkey() {
	select {
	case o.hotkeyCh <- struct{}{}:
	default:
		// A press is already pending; this one coalesces into it.
	}
}

// post schedules fn onto the control goroutine. Never blocks the caller,
// even when called from the control goroutine itself mid-pipeline.
func (o *Orchestrator) post(fn func()) {
	select {
	case o.taskCh <- fn:
	default:
		go func() { o.taskCh <- fn }()
	}
}

func (o *Orchestrator) handleHotkey() {
	title := o.probe.ActiveWindowTitle()
	o.log.Info("Hotkey fired", "active_title", title)

	if o.catalog.Len() == 0 {
		o.log.Warn("Game catalog is empty, nothing to match")
		o.notifier.Show("Game configurations not loaded", notify.Error)
		return
	}

	key, profile, ok := matcher.Match(title, o.catalog)
	if !ok {
		o.log.Info("No game profile matched", "title", title)
		o.notifier.Show(fmt.Sprintf("No configuration for: %s", title), notify.Info)
		return
	}
	o.log.Info("Matched game profile", "game", key)

	if _, special := cursorFixGames[strings.ToLower(key)]; special {
		o.log.Info("Applying fullscreen cursor fix", "game", key)
		wm.ShowCursor(o.log)
		if active := o.popups.Active(); active != nil && active.Visible() {
			o.log.Info("Popup already visible, raising it")
			active.Raise()
			return
		}
	}

	targetURL, searchTerm, ok := o.resolveTargetURL(key, profile)
	if !ok {
		return
	}

	o.log.Info("Opening wiki", "url", targetURL)
	if _, err := o.popups.Show(targetURL, o.settings.Popup); err != nil {
		o.log.Error("Failed to open popup", err, "url", targetURL)
		o.notifier.Show(fmt.Sprintf("Error opening wiki: %v", err), notify.Error)
		return
	}
	wm.ShowCursor(o.log)

	// Session state advances only once the popup is actually on screen.
	o.lastSearchURL = targetURL
	o.recordLookup(key, searchTerm, targetURL)
}

// resolveTargetURL produces the URL to open, prompting for a search term
// when the profile asks for one. ok is false when the user cancelled.
func (o *Orchestrator) resolveTargetURL(key string, profile models.GameProfile) (string, string, bool) {
	if !profile.NeedsSearch {
		return wiki.Build(profile, ""), "", true
	}

	// A last URL from another game's wiki makes no sense as a suggestion.
	prefill := ""
	if o.lastSearchURL != "" && !strings.HasPrefix(o.lastSearchURL, profile.BaseURL) {
		prefill = o.lastSearchURL
	}

	result, err := o.prompt.Ask(fmt.Sprintf("Search %s Wiki...", key), prefill)
	if err != nil {
		o.log.Error("Search prompt failed", err)
		return "", "", false
	}

	switch result.Outcome {
	case prompt.Accepted:
		// An empty accepted term opens the base URL like a no-search
		// profile would.
		return wiki.Build(profile, result.Term), result.Term, true
	case prompt.OpenLast:
		if o.lastSearchURL != "" {
			return o.lastSearchURL, "", true
		}
		return wiki.Build(profile, ""), "", true
	default:
		o.log.Info("Search prompt cancelled")
		return "", "", false
	}
}

// handlePopupClosing persists the popup's final geometry. Runs on the
// control goroutine, either inline during a synchronous replacement or via
// a posted WebView close event.
func (o *Orchestrator) handlePopupClosing(geo models.PopupGeometry) {
	o.log.Info("Popup closed",
		"left", geo.Left, "top", geo.Top,
		"width", geo.Width, "height", geo.Height,
	)
	o.settings.Popup = geo
	if err := o.store.SaveSettings(o.settings); err != nil {
		o.log.Error("Failed to persist popup geometry", err)
		return
	}
	o.log.Debug("Popup geometry saved")
}

func (o *Orchestrator) recordLookup(key, term, url string) {
	if o.history == nil {
		return
	}
	err := o.history.Record(storage.Lookup{
		Timestamp:  time.Now(),
		GameKey:    key,
		SearchTerm: term,
		URL:        url,
	})
	if err != nil {
		o.log.Error("Failed to record lookup history", err)
	}
}

// shutdown releases resources in order: popup first so its geometry is
// captured, then the hotkey listener, then the shared browsing engine.
// Failures are logged and never block the remaining steps.
func (o *Orchestrator) shutdown() {
	o.log.Info("Shutting down overlay services")

	o.popups.CloseActive()
	o.registrar.Unregister()
	o.factory.Shutdown()
	if o.history != nil {
		if err := o.history.Close(); err != nil {
			o.log.Error("Failed to close history database", err)
		}
	}

	o.log.Info("Shutdown complete")
}
