package dispatch

import (
	"context"
	"runtime/debug"
	"sync/atomic"

	"github.com/dshills/keychord/internal/chord"
	"github.com/dshills/keychord/internal/input"
)

// Executor starts an action. Implementations must not block on the action's
// completion.
type Executor interface {
	Execute(action chord.Action, shell []string)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(action chord.Action, shell []string)

// Execute calls f.
func (f ExecutorFunc) Execute(action chord.Action, shell []string) {
	f(action, shell)
}

// Logger is the logging surface used by the loop.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// PanicHandler is called when an Executor panics.
type PanicHandler func(action chord.Action, value any, stack []byte)

// State is the lifecycle state of a Loop.
type State int32

const (
	// StateIdle means Run has not been called.
	StateIdle State = iota
	// StateRunning means the loop is consuming events.
	StateRunning
	// StateTerminated means Run has returned. A terminated loop cannot be
	// restarted.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Loop consumes one input queue.
type Loop struct {
	queue    *input.Queue
	executor Executor
	bindings atomic.Pointer[chord.Bindings]

	logger       Logger
	panicHandler PanicHandler

	state atomic.Int32

	// Stats
	processed atomic.Uint64
	anomalies atomic.Uint64
	resets    atomic.Uint64
	actions   atomic.Uint64
	panicked  atomic.Uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the loop's logger.
func WithLogger(l Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithPanicHandler sets the handler for executor panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(lp *Loop) {
		lp.panicHandler = h
	}
}

// New creates a loop reading queue and starting actions on executor. A nil
// bindings is treated as an empty chord list.
func New(queue *input.Queue, executor Executor, bindings *chord.Bindings, opts ...Option) *Loop {
	l := &Loop{
		queue:    queue,
		executor: executor,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.SetBindings(bindings)
	return l
}

// SetBindings replaces the bindings used for subsequent events.
func (l *Loop) SetBindings(b *chord.Bindings) {
	if b == nil {
		b = &chord.Bindings{Options: chord.DefaultOptions()}
	}
	l.bindings.Store(b)
}

// Bindings returns the current bindings snapshot.
func (l *Loop) Bindings() *chord.Bindings {
	return l.bindings.Load()
}

// State returns the loop's lifecycle state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Run consumes events until the queue is closed or ctx is done. It returns
// ErrSourceClosed when the producer ended the stream and ctx.Err() on
// cancellation. On return the queue is detached so the producer stops too.
func (l *Loop) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	defer func() {
		l.queue.Detach()
		l.state.Store(int32(StateTerminated))
	}()

	held := chord.NewState()
	events := l.queue.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ErrSourceClosed
			}
			l.handle(held, ev)
		}
	}
}

// handle applies one event and starts the matching actions.
func (l *Loop) handle(held *chord.State, ev input.Event) {
	l.processed.Add(1)

	switch held.Apply(ev) {
	case chord.AnomalyDuplicatePress:
		l.anomalies.Add(1)
		l.logger.Warn("duplicate press of %s, were events dropped?", ev.Key)
	case chord.AnomalyDuplicateRelease:
		l.anomalies.Add(1)
		l.logger.Warn("duplicate release of %s, were events dropped?", ev.Key)
	}
	if ev.Kind == input.KindStop {
		l.resets.Add(1)
		l.logger.Debug("device disconnected, clearing held keys")
	}

	b := l.bindings.Load()
	for _, action := range b.Evaluate(held) {
		l.actions.Add(1)
		l.logger.Debug("chord matched, starting %s", action)
		l.execute(action, b.Shell)
	}
}

func (l *Loop) execute(action chord.Action, shell []string) {
	defer func() {
		if r := recover(); r != nil {
			l.panicked.Add(1)
			stack := debug.Stack()
			l.logger.Error("executor panicked on %s: %v", action, r)
			if l.panicHandler != nil {
				func() {
					defer func() { _ = recover() }()
					l.panicHandler(action, r, stack)
				}()
			}
		}
	}()
	l.executor.Execute(action, shell)
}

// Stats contains counters for a loop.
type Stats struct {
	// Processed is the number of events consumed.
	Processed uint64

	// Anomalies is the number of duplicate presses and releases seen.
	Anomalies uint64

	// Resets is the number of Stop events seen.
	Resets uint64

	// Actions is the number of actions handed to the executor.
	Actions uint64

	// Panicked is the number of executor panics recovered.
	Panicked uint64

	// Queue holds the input queue counters.
	Queue input.QueueStats
}

// Stats returns a snapshot of the loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Processed: l.processed.Load(),
		Anomalies: l.anomalies.Load(),
		Resets:    l.resets.Load(),
		Actions:   l.actions.Load(),
		Panicked:  l.panicked.Load(),
		Queue:     l.queue.Stats(),
	}
}
