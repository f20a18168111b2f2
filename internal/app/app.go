// Package app wires configuration, input sources, dispatch loops, and the
// process runner into the keychord daemon and manages its lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/dispatch"
	"github.com/dshills/keychord/internal/process"
)

// Application is the central coordinator for all keychord components.
type Application struct {
	mu sync.RWMutex

	manager   *config.Manager
	runner    *process.Runner
	executor  dispatch.Executor
	executors []*executor

	logger  *Logger
	metrics *Metrics

	running atomic.Bool

	opts Options
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Required.
	Config *config.Config

	// Watch enables live reload of Config.Path.
	Watch bool

	// Debounce is the quiet period before a file change is reloaded.
	// Zero uses watcher.DefaultDebounce.
	Debounce time.Duration

	// QueueSize is the capacity of each executor's input queue. Zero uses
	// input.DefaultQueueSize.
	QueueSize int

	// Logger receives all log output. Nil uses GetLogger().
	Logger *Logger

	// Executor replaces the process runner, mainly for tests.
	Executor dispatch.Executor

	// Sources replaces DefaultSourceFactory.
	Sources SourceFactory
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Config == nil {
		return nil, &InitError{Component: "config", Err: errors.New("no configuration")}
	}
	if opts.Debounce == 0 {
		opts.Debounce = watcher.DefaultDebounce
	}

	app := &Application{
		opts:    opts,
		logger:  opts.Logger,
		metrics: NewMetrics(),
	}
	if app.logger == nil {
		app.logger = GetLogger()
	}

	if err := newBootstrapper(app, opts).bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run starts every executor and blocks until all of them have stopped or
// ctx is done. An executor whose input source ends is logged and the rest
// keep running. Run returns the first executor failure, or nil when ctx
// ended the run.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if len(app.executors) == 0 {
		app.logger.Warn("no executors configured, nothing to do")
		return app.shutdown()
	}

	sub := app.manager.Subscribe(app.onConfigChange)
	defer sub.Unsubscribe()

	if app.opts.Watch {
		if err := app.manager.Watch(app.opts.Debounce); err != nil {
			app.logger.Warn("live reload disabled: %v", err)
		} else {
			app.logger.Debug("watching %s for changes", app.manager.Path())
		}
	}

	var g errgroup.Group
	for _, ex := range app.executors {
		ex := ex
		g.Go(func() error {
			return app.runExecutor(ctx, ex)
		})
	}
	runErr := g.Wait()

	if err := app.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// runExecutor runs one source and its dispatch loop until both return.
// Either side ending stops the other: the source closes the queue, and the
// loop detaches from it.
func (app *Application) runExecutor(ctx context.Context, ex *executor) error {
	ex.log.Info("starting %s executor on %s", ex.spec.Backend, ex.spec.Device)

	var (
		g                   errgroup.Group
		srcErr, dispatchErr error
	)
	g.Go(func() error {
		srcErr = ex.source.Run(ctx)
		return srcErr
	})
	g.Go(func() error {
		dispatchErr = ex.loop.Run(ctx)
		return dispatchErr
	})
	_ = g.Wait()

	if ctx.Err() != nil {
		ex.log.Debug("stopped")
		return nil
	}

	app.metrics.RecordExecutorExit()
	err := dispatchErr
	if srcErr != nil && !errors.Is(srcErr, dispatchErr) {
		err = fmt.Errorf("%w: %w", dispatchErr, srcErr)
	}
	ex.log.Error("executor stopped: %v", err)
	return NewComponentError(ex.name, "run", err)
}

// shutdown releases shared components. Running actions are left alone.
func (app *Application) shutdown() error {
	errs := NewErrorList()

	if app.manager != nil {
		if err := app.manager.Close(); err != nil {
			errs.Add(NewComponentError("config", "close", err))
		}
	}
	if app.runner != nil {
		app.runner.Close()
	}

	s := app.Snapshot()
	app.logger.Info("shutting down after %v: %d events, %d actions, %d dropped, %d reloads",
		s.Uptime.Round(time.Second), s.Events, s.Actions, s.Dropped, s.Reloads)

	return errs.AsError()
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.manager.Current()
}

// Runner returns the process runner, or nil when Options.Executor
// replaced it.
func (app *Application) Runner() *process.Runner {
	return app.runner
}

// Loops returns the dispatch loop of every executor in configuration
// order.
func (app *Application) Loops() []*dispatch.Loop {
	app.mu.RLock()
	defer app.mu.RUnlock()

	loops := make([]*dispatch.Loop, len(app.executors))
	for i, ex := range app.executors {
		loops[i] = ex.loop
	}
	return loops
}
