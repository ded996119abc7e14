// Package hotkey owns the OS-level global shortcut listener.
package hotkey

import (
	"sync"
	"time"

	"golang.design/x/hotkey"

	"game-wiki-overlay/internal/models"
	"game-wiki-overlay/pkg/logger"
)

// teardownTimeout bounds the join on a stopping listener goroutine.
const teardownTimeout = 2 * time.Second

// Registrar translates a HotkeyConfig into a platform shortcut and runs a
// background listener for it. Register, Unregister and Reregister are
// mutually exclusive under a single lock; the fired callback runs on the
// listener goroutine and must only hand off to the control thread.
type Registrar struct {
	log *logger.Logger

	mu       sync.Mutex
	listener *listener
	current  models.HotkeyConfig
}

type listener struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
	done chan struct{}
}

// NewRegistrar creates a registrar with no active hotkey.
func NewRegistrar(log *logger.Logger) *Registrar {
	return &Registrar{log: log}
}

// translate maps the config onto platform tokens. Unknown modifiers are
// logged and dropped, never fatal; an unresolvable key fails.
func (r *Registrar) translate(cfg models.HotkeyConfig) ([]hotkey.Modifier, hotkey.Key, error) {
	cfg = cfg.Normalize()

	mods := make([]hotkey.Modifier, 0, len(cfg.Modifiers))
	for _, m := range cfg.Modifiers {
		token, ok := modifierMap[m]
		if !ok {
			r.log.Warn("Dropping unknown modifier", "modifier", m.String())
			continue
		}
		mods = append(mods, token)
	}

	key, err := parseKey(cfg.Key)
	if err != nil {
		return nil, 0, err
	}
	return mods, key, nil
}

// Register establishes the global shortcut and starts its listener. The
// onFired callback executes on the listener goroutine; it must not touch
// UI-owned state and should only enqueue an event. Returns false when the
// config is invalid or the platform rejects the registration; an already
// active registration is left untouched in that case.
func (r *Registrar) Register(cfg models.HotkeyConfig, onFired func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registerLocked(cfg, onFired)
}

func (r *Registrar) registerLocked(cfg models.HotkeyConfig, onFired func()) bool {
	if err := cfg.Validate(); err != nil {
		r.log.Error("Cannot register hotkey: invalid config", err)
		return false
	}

	mods, key, err := r.translate(cfg)
	if err != nil {
		r.log.Error("Cannot register hotkey: translation failed", err,
			"combination", cfg.String())
		return false
	}

	if r.listener != nil {
		r.log.Info("Stopping existing listener before registering new hotkey")
		r.teardownLocked()
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		r.log.Error("Platform rejected hotkey registration", err,
			"combination", cfg.String())
		return false
	}

	l := &listener{
		hk:   hk,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go l.run(onFired)

	r.listener = l
	r.current = cfg.Normalize()
	r.log.Info("Global hotkey registered", "combination", r.current.String())
	return true
}

func (l *listener) run(onFired func()) {
	defer close(l.done)
	for {
		select {
		case <-l.stop:
			return
		case <-l.hk.Keydown():
			if onFired != nil {
				onFired()
			}
		}
	}
}

// Unregister stops the active listener, if any.
func (r *Registrar) Unregister() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listener == nil {
		return
	}
	r.teardownLocked()
	r.log.Info("Global hotkey unregistered", "combination", r.current.String())
	r.current = models.HotkeyConfig{}
}

// teardownLocked stops and joins the listener goroutine with a bounded
// wait, then releases the platform registration. Callers hold r.mu, so no
// window exists where two listeners are live.
func (r *Registrar) teardownLocked() {
	l := r.listener
	r.listener = nil

	close(l.stop)
	select {
	case <-l.done:
	case <-time.After(teardownTimeout):
		r.log.Warn("Listener goroutine did not stop within timeout")
	}

	if err := l.hk.Unregister(); err != nil {
		r.log.Error("Failed to release platform hotkey", err)
	}
}

// Reregister tears the previous listener fully down before establishing the
// new one. When the new registration fails after teardown the process ends
// with no active hotkey; that degraded state is logged, not fatal.
func (r *Registrar) Reregister(cfg models.HotkeyConfig, onFired func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listener != nil {
		r.teardownLocked()
	}

	ok := r.registerLocked(cfg, onFired)
	if !ok {
		r.log.Warn("Re-registration failed, no hotkey is active",
			"combination", cfg.String())
	}
	return ok
}

// Active returns the currently registered combination, if any.
func (r *Registrar) Active() (models.HotkeyConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listener == nil {
		return models.HotkeyConfig{}, false
	}
	return r.current, true
}
