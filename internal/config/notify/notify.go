// Package notify delivers configuration reload notifications.
//
// A Notifier fans out Change values to subscribed observers, either on the
// caller's goroutine or through a buffered channel drained by a single
// goroutine. Observers are called in subscription order.
package notify

import (
	"sort"
	"sync"
)

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeReload indicates a new configuration was loaded and applied.
	ChangeReload ChangeType = iota

	// ChangeRejected indicates a reload failed and the previous
	// configuration was kept.
	ChangeRejected
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeReload:
		return "reload"
	case ChangeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Type is the type of change.
	Type ChangeType

	// Old is the configuration in effect before the change.
	Old any

	// New is the configuration now in effect. Nil for rejected reloads.
	New any

	// Err is why a reload was rejected.
	Err error

	// Source identifies where the change came from, usually a file path.
	Source string
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages configuration change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	observers map[uint64]Observer
	nextID    uint64

	async  bool
	buffer chan Change

	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous notification delivery.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		observers: make(map[uint64]Observer),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change notification to all observers. Changes sent after
// Close are dropped.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	n.mu.RUnlock()

	if n.async {
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return
	}

	n.deliver(change)
}

// NotifyReload reports a successfully applied configuration.
func (n *Notifier) NotifyReload(source string, old, cur any) {
	n.Notify(Change{Type: ChangeReload, Old: old, New: cur, Source: source})
}

// NotifyRejected reports a reload that failed with err.
func (n *Notifier) NotifyRejected(source string, old any, err error) {
	n.Notify(Change{Type: ChangeRejected, Old: old, Err: err, Source: source})
}

// Close shuts down the notifier, delivering any buffered changes first.
// It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// deliver calls every observer outside the lock. A panicking observer does
// not prevent delivery to the rest.
func (n *Notifier) deliver(change Change) {
	n.mu.RLock()
	ids := make([]uint64, 0, len(n.observers))
	for id := range n.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	observers := make([]Observer, len(ids))
	for i, id := range ids {
		observers[i] = n.observers[id]
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		func() {
			defer func() { _ = recover() }()
			obs(change)
		}()
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case change := <-n.buffer:
			n.deliver(change)
		case <-n.done:
			// Drain remaining buffered changes
			for {
				select {
				case change := <-n.buffer:
					n.deliver(change)
				default:
					return
				}
			}
		}
	}
}
