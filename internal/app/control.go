package app

import (
	"errors"
	"fmt"
	"time"
)

// The control-socket handler. Every method defers to the control goroutine;
// a pipeline stuck in a modal prompt answers "busy" instead of blocking the
// socket forever.

var errControlBusy = errors.New("control thread busy")

// Trigger enqueues a synthetic hotkey press.
func (o *Orchestrator) Trigger() error {
	o.fireHotkey()
	return nil
}

// ReloadCatalog re-reads the game catalog from disk.
func (o *Orchestrator) ReloadCatalog() (int, error) {
	done := make(chan int, 1)
	o.post(func() {
		o.catalog = o.store.LoadGameCatalog()
		o.log.Info("Game catalog reloaded", "games", o.catalog.Len())
		done <- o.catalog.Len()
	})
	select {
	case n := <-done:
		return n, nil
	case <-o.quitCh:
		return 0, errors.New("shutting down")
	case <-time.After(controlTimeout):
		return 0, errControlBusy
	}
}

// Rehotkey re-reads settings from disk and re-registers the hotkey.
func (o *Orchestrator) Rehotkey() error {
	done := make(chan error, 1)
	o.post(func() {
		o.settings = o.store.LoadSettings()
		if !o.registrar.Reregister(o.settings.Hotkey, o.fireHotkey) {
			done <- fmt.Errorf("failed to register %s", o.settings.Hotkey.String())
			return
		}
		o.log.Info("Hotkey re-registered", "hotkey", o.settings.Hotkey.String())
		done <- nil
	})
	select {
	case err := <-done:
		return err
	case <-o.quitCh:
		return errors.New("shutting down")
	case <-time.After(controlTimeout):
		return errControlBusy
	}
}

// Status reports a snapshot of the daemon state.
func (o *Orchestrator) Status() map[string]any {
	done := make(chan map[string]any, 1)
	o.post(func() {
		st := map[string]any{
			"probe": o.probe.Name(),
			"games": o.catalog.Len(),
		}
		if cfg, ok := o.registrar.Active(); ok {
			st["hotkey"] = cfg.String()
		}
		if p := o.popups.Active(); p != nil {
			st["popup_url"] = p.URL()
			st["popup_state"] = p.State().String()
			st["popup_visible"] = p.Visible()
		}
		if o.lastSearchURL != "" {
			st["last_url"] = o.lastSearchURL
		}
		done <- st
	})
	select {
	case st := <-done:
		return st
	case <-time.After(controlTimeout):
		return map[string]any{"note": "control thread busy, likely in a prompt"}
	}
}
