package input

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the capacity used when none is configured.
const DefaultQueueSize = 1024

// Sentinel errors for the queue.
var (
	// ErrQueueFull is returned when an event was dropped because the
	// consumer has fallen behind.
	ErrQueueFull = errors.New("event queue is full")

	// ErrConsumerGone is returned once the consumer has detached. Producers
	// treat it as fatal.
	ErrConsumerGone = errors.New("event consumer has gone away")

	// ErrQueueClosed is returned when pushing after the producer side closed
	// the queue.
	ErrQueueClosed = errors.New("event queue is closed")
)

// Queue is a bounded multi-producer, single-consumer event queue. Pushing
// never blocks on a full queue: the new event is dropped and counted.
//
// The producer side calls Close when no more events will follow. The
// consumer side calls Detach when it stops reading, which makes further
// pushes fail with ErrConsumerGone.
type Queue struct {
	mu     sync.RWMutex // guards closed against concurrent sends
	closed bool
	events chan Event

	gone       chan struct{}
	detachOnce sync.Once

	pushed  atomic.Uint64
	dropped atomic.Uint64
}

// NewQueue creates a queue holding at most size events.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		events: make(chan Event, size),
		gone:   make(chan struct{}),
	}
}

// TryPush enqueues ev without blocking. It returns ErrQueueFull when the
// event had to be dropped.
func (q *Queue) TryPush(ev Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	if q.isDetached() {
		return ErrConsumerGone
	}

	select {
	case q.events <- ev:
		q.pushed.Add(1)
		return nil
	default:
		q.dropped.Add(1)
		return ErrQueueFull
	}
}

// Push enqueues ev, waiting for room. Backends use it for Stop events,
// which must not be lost. It returns early if the consumer detaches or ctx
// is done.
func (q *Queue) Push(ctx context.Context, ev Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	if q.isDetached() {
		return ErrConsumerGone
	}

	select {
	case q.events <- ev:
		q.pushed.Add(1)
		return nil
	case <-q.gone:
		return ErrConsumerGone
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events returns the channel the consumer reads from. It is closed after
// Close once buffered events are drained.
func (q *Queue) Events() <-chan Event {
	return q.events
}

// Close marks the end of the stream. Safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.events)
}

// Detach signals that the consumer will not read any more events.
func (q *Queue) Detach() {
	q.detachOnce.Do(func() { close(q.gone) })
}

// Gone returns a channel closed when the consumer detaches.
func (q *Queue) Gone() <-chan struct{} {
	return q.gone
}

func (q *Queue) isDetached() bool {
	select {
	case <-q.gone:
		return true
	default:
		return false
	}
}

// QueueStats contains counters for a queue.
type QueueStats struct {
	// Pushed is the number of events accepted.
	Pushed uint64

	// Dropped is the number of events discarded because the queue was full.
	Dropped uint64

	// Depth is the number of events waiting to be read.
	Depth int

	// Capacity is the maximum number of buffered events.
	Capacity int
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() QueueStats {
	return QueueStats{
		Pushed:   q.pushed.Load(),
		Dropped:  q.dropped.Load(),
		Depth:    len(q.events),
		Capacity: cap(q.events),
	}
}
