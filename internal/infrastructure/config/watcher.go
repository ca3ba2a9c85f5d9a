package config

import (
	"context"
	"errors"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/panedrawer/internal/logging"
)

// ErrNoConfigFile is returned by Watch when the manager runs on defaults only.
var ErrNoConfigFile = errors.New("no config file to watch")

// Watch starts watching the config file and reloads it on change. Callbacks
// registered with OnConfigChange run after every successful reload. A reload
// that fails validation keeps the previous configuration.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.configFile == "" {
		return ErrNoConfigFile
	}

	log := logging.FromContext(ctx).With().Str("component", "config").Logger()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		previous := m.config
		if err := m.reload(); err != nil {
			m.config = previous
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := *m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		c := config
		callback(&c)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
