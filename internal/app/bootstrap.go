package app

import (
	"context"
	"fmt"

	"github.com/dshills/keychord/internal/chord"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/dispatch"
	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/input/evdev"
	"github.com/dshills/keychord/internal/process"
)

// Source produces input events for one executor. Run must close its queue
// before returning.
type Source interface {
	Run(ctx context.Context) error
}

// SourceFactory opens the input source an executor describes.
type SourceFactory func(spec config.Executor, queue *input.Queue, logger *Logger) (Source, error)

// DefaultSourceFactory builds evdev readers.
func DefaultSourceFactory(spec config.Executor, queue *input.Queue, logger *Logger) (Source, error) {
	switch spec.Backend {
	case config.BackendEvdev:
		return evdev.New(evdev.Config{
			Device: spec.Device,
			Retry:  spec.Retry,
		}, queue, evdev.WithLogger(logger)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, spec.Backend)
	}
}

// LoadConfig loads the file at path, or the default file when path is
// empty.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// executor is one running backend binding: an input source feeding a
// dispatch loop through a queue.
type executor struct {
	index  int
	name   string
	spec   config.Executor
	queue  *input.Queue
	source Source
	loop   *dispatch.Loop
	log    *Logger
}

// bootstrapper handles component initialization with proper cleanup on failure.
type bootstrapper struct {
	app  *Application
	opts Options
}

func newBootstrapper(app *Application, opts Options) *bootstrapper {
	return &bootstrapper{app: app, opts: opts}
}

// bootstrap initializes all components in dependency order.
func (b *bootstrapper) bootstrap() error {
	b.initRunner()
	b.initManager()

	if err := b.initExecutors(); err != nil {
		b.cleanup()
		return err
	}
	return nil
}

// initRunner sets up the process runner that executes matched actions.
// A caller-supplied executor replaces it.
func (b *bootstrapper) initRunner() {
	if b.opts.Executor != nil {
		b.app.executor = b.opts.Executor
		return
	}
	b.app.runner = process.NewRunner(process.WithLogger(b.app.logger.WithComponent("runner")))
	b.app.executor = b.app.runner
}

func (b *bootstrapper) initManager() {
	cfg := b.opts.Config
	for _, w := range cfg.Warnings {
		b.app.logger.Warn("%s", w)
	}
	b.app.manager = config.NewManager(cfg)
}

func (b *bootstrapper) initExecutors() error {
	factory := b.opts.Sources
	if factory == nil {
		factory = DefaultSourceFactory
	}
	size := b.opts.QueueSize
	if size <= 0 {
		size = input.DefaultQueueSize
	}

	for i, spec := range b.opts.Config.Executors {
		name := fmt.Sprintf("executors[%d]", i)
		log := b.app.logger.WithField("executor", i).WithField("device", spec.Device)

		queue := input.NewQueue(size)
		source, err := factory(spec, queue, log.WithComponent("input"))
		if err != nil {
			return &InitError{Component: name, Err: err}
		}

		loop := dispatch.New(queue, b.app.executor, spec.Bindings,
			dispatch.WithLogger(log.WithComponent("dispatch")),
			dispatch.WithPanicHandler(func(action chord.Action, value any, stack []byte) {
				log.Debug("%v", NewRecoveredPanicError(value, string(stack)))
			}),
		)

		b.app.executors = append(b.app.executors, &executor{
			index:  i,
			name:   name,
			spec:   spec,
			queue:  queue,
			source: source,
			loop:   loop,
			log:    log,
		})
	}
	return nil
}

// cleanup releases components created before a failure.
func (b *bootstrapper) cleanup() {
	for _, ex := range b.app.executors {
		ex.queue.Close()
	}
	b.app.executors = nil
	if b.app.manager != nil {
		_ = b.app.manager.Close()
	}
	if b.app.runner != nil {
		b.app.runner.Close()
	}
}
