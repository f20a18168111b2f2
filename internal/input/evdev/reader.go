// Package evdev reads key events from a Linux input device and feeds them
// into an input.Queue.
//
// A Reader owns one device path. In retry mode a lost or missing device is
// reopened every RetryInterval, and a Stop event is delivered each time the
// device goes away so that held-key state is reset. Without retry, the first
// error ends the stream.
package evdev

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/keychord/internal/input"
)

// DefaultRetryInterval is the delay between attempts to reopen a device.
const DefaultRetryInterval = time.Second

// ErrUnsupported is returned on platforms without evdev.
var ErrUnsupported = errors.New("evdev backend is only supported on linux")

// Logger is the logging surface used by the reader.
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

// Config describes one device.
type Config struct {
	// Device is the path of the event device, e.g. /dev/input/event3.
	Device string

	// Retry keeps the reader alive across device loss.
	Retry bool

	// RetryInterval overrides DefaultRetryInterval when positive.
	RetryInterval time.Duration
}

// device is an open input device yielding translated events. ok is false
// for raw events that do not map to a key transition.
type device interface {
	Next() (ev input.Event, ok bool, err error)
	Close() error
}

type openFunc func(path string) (device, error)

// Reader pumps events from a device into a queue.
type Reader struct {
	cfg    Config
	queue  *input.Queue
	logger Logger

	open      openFunc
	retryable func(error) bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the reader's logger.
func WithLogger(l Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a reader for cfg that pushes into queue.
func New(cfg Config, queue *input.Queue, opts ...Option) *Reader {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = DefaultRetryInterval
	}
	r := &Reader{
		cfg:       cfg,
		queue:     queue,
		logger:    nopLogger{},
		open:      openDevice,
		retryable: isRetryable,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Device returns the configured device path.
func (r *Reader) Device() string {
	return r.cfg.Device
}

// Run reads until the device fails without retry, the consumer detaches,
// or ctx is done. The queue is closed on return, so the consumer observes
// the end of the stream.
func (r *Reader) Run(ctx context.Context) error {
	defer r.queue.Close()

	for {
		dev, err := r.open(r.cfg.Device)
		if err != nil {
			if !r.cfg.Retry || !r.retryable(err) {
				return fmt.Errorf("open device %s: %w", r.cfg.Device, err)
			}
			r.logger.Debug("device %s unavailable, retrying: %v", r.cfg.Device, err)
			if err := r.wait(ctx); err != nil {
				return err
			}
			continue
		}

		r.logger.Info("listening on %s", r.cfg.Device)
		err = r.pump(ctx, dev)
		_ = dev.Close()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, input.ErrConsumerGone) {
			return err
		}
		if !r.cfg.Retry {
			return fmt.Errorf("read device %s: %w", r.cfg.Device, err)
		}

		r.logger.Warn("lost device %s: %v", r.cfg.Device, err)
		if err := r.queue.Push(ctx, input.Stop()); err != nil {
			return err
		}
		if err := r.wait(ctx); err != nil {
			return err
		}
	}
}

// pump forwards events from dev until a read or queue error.
func (r *Reader) pump(ctx context.Context, dev device) error {
	// Next blocks in a read; closing the device is the only way to
	// interrupt it.
	stop := context.AfterFunc(ctx, func() { _ = dev.Close() })
	defer stop()

	for {
		ev, ok, err := dev.Next()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch err := r.queue.TryPush(ev); {
		case err == nil:
		case errors.Is(err, input.ErrQueueFull):
			r.logger.Warn("overflowed capacity, events may be dropped")
		default:
			return err
		}
	}
}

func (r *Reader) wait(ctx context.Context) error {
	t := time.NewTimer(r.cfg.RetryInterval)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-r.queue.Gone():
		return input.ErrConsumerGone
	case <-ctx.Done():
		return ctx.Err()
	}
}
