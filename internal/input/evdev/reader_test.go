package evdev

import (
	"context"
	"errors"
	"io/fs"
	"sync"
	"testing"
	"time"

	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/key"
)

var errUnplugged = errors.New("unplugged")

// fakeDevice yields scripted events, then fails with err.
type fakeDevice struct {
	mu     sync.Mutex
	events []input.Event
	err    error
	closed chan struct{}
	once   sync.Once
}

func newFakeDevice(err error, events ...input.Event) *fakeDevice {
	return &fakeDevice{events: events, err: err, closed: make(chan struct{})}
}

func (d *fakeDevice) Next() (input.Event, bool, error) {
	d.mu.Lock()
	if len(d.events) > 0 {
		ev := d.events[0]
		d.events = d.events[1:]
		d.mu.Unlock()
		return ev, true, nil
	}
	d.mu.Unlock()

	if d.err != nil {
		return input.Event{}, false, d.err
	}
	<-d.closed
	return input.Event{}, false, fs.ErrClosed
}

func (d *fakeDevice) Close() error {
	d.once.Do(func() { close(d.closed) })
	return nil
}

// script returns an openFunc that hands out results in order and then
// reports the device as missing.
func script(results ...any) (openFunc, *int) {
	var mu sync.Mutex
	calls := 0
	return func(string) (device, error) {
		mu.Lock()
		defer mu.Unlock()
		i := calls
		calls++
		if i >= len(results) {
			return nil, fs.ErrNotExist
		}
		switch r := results[i].(type) {
		case device:
			return r, nil
		case error:
			return nil, r
		}
		return nil, fs.ErrNotExist
	}, &calls
}

func newTestReader(cfg Config, q *input.Queue, open openFunc) *Reader {
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = time.Millisecond
	}
	r := New(cfg, q)
	r.open = open
	r.retryable = func(err error) bool {
		return errors.Is(err, fs.ErrNotExist) || errors.Is(err, errUnplugged)
	}
	return r
}

func drain(q *input.Queue) []input.Event {
	var got []input.Event
	for ev := range q.Events() {
		got = append(got, ev)
	}
	return got
}

func TestReader_NoRetryEndsStream(t *testing.T) {
	q := input.NewQueue(16)
	dev := newFakeDevice(errUnplugged, input.Pressed(key.A), input.Released(key.A))
	open, _ := script(dev)

	r := newTestReader(Config{Device: "/dev/input/test"}, q, open)
	err := r.Run(context.Background())
	if !errors.Is(err, errUnplugged) {
		t.Fatalf("expected errUnplugged, got %v", err)
	}

	got := drain(q)
	want := []input.Event{input.Pressed(key.A), input.Released(key.A)}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReader_NoRetryOpenFailure(t *testing.T) {
	q := input.NewQueue(4)
	open, calls := script(fs.ErrNotExist)

	r := newTestReader(Config{Device: "/dev/input/missing"}, q, open)
	if err := r.Run(context.Background()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if *calls != 1 {
		t.Errorf("open called %d times, want 1", *calls)
	}
	if _, ok := <-q.Events(); ok {
		t.Error("expected queue to be closed")
	}
}

func TestReader_RetrySendsStopOnLoss(t *testing.T) {
	q := input.NewQueue(16)
	first := newFakeDevice(errUnplugged, input.Pressed(key.LeftCtrl))
	second := newFakeDevice(fs.ErrPermission, input.Pressed(key.B))
	open, calls := script(fs.ErrNotExist, first, fs.ErrNotExist, second, fs.ErrPermission)

	r := newTestReader(Config{Device: "/dev/input/test", Retry: true}, q, open)
	err := r.Run(context.Background())
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected fs.ErrPermission, got %v", err)
	}
	if *calls != 5 {
		t.Errorf("open called %d times, want 5", *calls)
	}

	got := drain(q)
	want := []input.Event{
		input.Pressed(key.LeftCtrl),
		input.Stop(),
		input.Pressed(key.B),
		input.Stop(),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReader_ConsumerGone(t *testing.T) {
	q := input.NewQueue(4)
	q.Detach()
	dev := newFakeDevice(nil, input.Pressed(key.A))
	open, _ := script(dev)

	r := newTestReader(Config{Device: "/dev/input/test", Retry: true}, q, open)
	if err := r.Run(context.Background()); !errors.Is(err, input.ErrConsumerGone) {
		t.Fatalf("expected ErrConsumerGone, got %v", err)
	}
}

func TestReader_ContextCancelUnblocksRead(t *testing.T) {
	q := input.NewQueue(4)
	dev := newFakeDevice(nil)
	open, _ := script(dev)

	r := newTestReader(Config{Device: "/dev/input/test", Retry: true}, q, open)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestReader_OverflowKeepsReading(t *testing.T) {
	q := input.NewQueue(1)
	dev := newFakeDevice(errUnplugged,
		input.Pressed(key.A), input.Pressed(key.B), input.Pressed(key.C))
	open, _ := script(dev)

	r := newTestReader(Config{Device: "/dev/input/test"}, q, open)
	if err := r.Run(context.Background()); !errors.Is(err, errUnplugged) {
		t.Fatalf("expected errUnplugged, got %v", err)
	}

	stats := q.Stats()
	if stats.Pushed != 1 || stats.Dropped != 2 {
		t.Errorf("Pushed/Dropped = %d/%d, want 1/2", stats.Pushed, stats.Dropped)
	}
	if got := drain(q); len(got) != 1 || got[0] != input.Pressed(key.A) {
		t.Errorf("got %v, want [pressed(A)]", got)
	}
}

func TestNew_DefaultRetryInterval(t *testing.T) {
	r := New(Config{Device: "/dev/input/event0"}, input.NewQueue(1))
	if r.cfg.RetryInterval != DefaultRetryInterval {
		t.Errorf("RetryInterval = %v, want %v", r.cfg.RetryInterval, DefaultRetryInterval)
	}
	if r.Device() != "/dev/input/event0" {
		t.Errorf("Device() = %q", r.Device())
	}
}
