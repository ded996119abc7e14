package global

import (
	"sync"

	"game-wiki-overlay/pkg/config"
	"game-wiki-overlay/pkg/logger"
	"game-wiki-overlay/pkg/notify"
)

var (
	store    *config.Store
	log      *logger.Logger
	notifier *notify.Service
	initOnce sync.Once
	mu       sync.RWMutex
)

// InitGlobals wires the process-wide service handles exactly once. Mutable
// application state (settings, session, popup) is never stored here; it
// belongs to the orchestrator.
func InitGlobals(s *config.Store, l *logger.Logger) {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		store = s
		log = l
		notifier = notify.NewService(l)
	})
}

// GetStore returns the global config store.
func GetStore() *config.Store {
	mu.RLock()
	defer mu.RUnlock()
	return store
}

// GetLogger returns the global logger instance.
func GetLogger() *logger.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// GetNotifier returns the global notifier instance.
func GetNotifier() *notify.Service {
	mu.RLock()
	defer mu.RUnlock()
	return notifier
}
