package config

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/keychord/internal/config/notify"
	"github.com/dshills/keychord/internal/config/watcher"
)

// ErrWatch wraps errors reported by the file watcher.
var ErrWatch = errors.New("watching config file")

// ErrManagerClosed is returned when using a closed Manager.
var ErrManagerClosed = errors.New("config manager is closed")

// Manager holds the configuration in effect and replaces it when the file
// changes. Observers are told about every applied or rejected reload.
type Manager struct {
	mu      sync.RWMutex
	path    string
	opts    []LoadOption
	current *Config
	watcher *watcher.Watcher
	closed  bool

	notifier *notify.Notifier

	reloads  atomic.Uint64
	rejected atomic.Uint64
}

// NewManager returns a manager starting from cfg. Reloads read cfg.Path
// with opts.
func NewManager(cfg *Config, opts ...LoadOption) *Manager {
	return &Manager{
		path:     cfg.Path,
		opts:     opts,
		current:  cfg,
		notifier: notify.New(),
	}
}

// Path returns the watched configuration file.
func (m *Manager) Path() string {
	return m.path
}

// Current returns the configuration in effect.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Subscribe registers an observer for reloads. Change.Old and Change.New
// hold *Config values.
func (m *Manager) Subscribe(observer notify.Observer) *notify.Subscription {
	return m.notifier.Subscribe(observer)
}

// Reload loads the file again. On failure the current configuration is kept
// and the error is returned and reported to observers.
func (m *Manager) Reload() (*Config, error) {
	next, err := Load(m.path, m.opts...)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	old := m.current
	if err == nil {
		m.current = next
	}
	m.mu.Unlock()

	if err != nil {
		m.rejected.Add(1)
		m.notifier.NotifyRejected(m.path, old, err)
		return nil, err
	}
	m.reloads.Add(1)
	m.notifier.NotifyReload(m.path, old, next)
	return next, nil
}

// Watch reloads the configuration whenever its file changes. Changes are
// delivered once the file has been quiet for debounce.
func (m *Manager) Watch(debounce time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}
	if m.watcher != nil {
		return nil
	}

	w, err := watcher.New(watcher.WithDebounce(debounce))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	if err := w.Watch(m.path); err != nil {
		_ = w.Stop()
		return fmt.Errorf("%w %s: %w", ErrWatch, m.path, err)
	}
	w.OnChange(func(watcher.Event) {
		_, _ = m.Reload()
	})
	w.OnError(func(err error) {
		m.rejected.Add(1)
		m.notifier.NotifyRejected(m.path, m.Current(), fmt.Errorf("%w: %w", ErrWatch, err))
	})
	if err := w.Start(); err != nil {
		_ = w.Stop()
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	m.watcher = w
	return nil
}

// ManagerStats counts reload outcomes.
type ManagerStats struct {
	Reloads  uint64
	Rejected uint64
}

// Stats returns a snapshot of the reload counters.
func (m *Manager) Stats() ManagerStats {
	return ManagerStats{
		Reloads:  m.reloads.Load(),
		Rejected: m.rejected.Load(),
	}
}

// Close stops watching and releases observers.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	w := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	var err error
	if w != nil {
		err = w.Stop()
	}
	m.notifier.Close()
	return err
}
