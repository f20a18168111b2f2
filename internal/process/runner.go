package process

import (
	"errors"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/dshills/keychord/internal/chord"
)

// Errors returned by Command for actions that cannot be run.
var (
	ErrNoShell      = errors.New("cannot execute shell command without shell configured")
	ErrEmptyShell   = errors.New("configured shell is empty")
	ErrEmptyCommand = errors.New("action command is empty")
)

// Logger is the logging surface used by the runner.
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

// Command builds the command for action. Shell actions need a non-nil
// shell whose first element names the executable; the command text is
// appended as the last argument.
func Command(action chord.Action, shell []string) (*exec.Cmd, error) {
	switch action.Kind {
	case chord.ActionShell:
		if shell == nil {
			return nil, ErrNoShell
		}
		if len(shell) == 0 || shell[0] == "" {
			return nil, ErrEmptyShell
		}
		args := make([]string, 0, len(shell))
		args = append(args, shell[1:]...)
		args = append(args, action.Command)
		return exec.Command(shell[0], args...), nil
	default:
		if len(action.Argv) == 0 || action.Argv[0] == "" {
			return nil, ErrEmptyCommand
		}
		return exec.Command(action.Argv[0], action.Argv[1:]...), nil
	}
}

// Runner starts actions in the background. It implements the dispatch
// loop's executor interface.
type Runner struct {
	supervisor *Supervisor
	logger     Logger
	wg         sync.WaitGroup

	// Stats
	started     atomic.Uint64
	invalid     atomic.Uint64
	spawnFailed atomic.Uint64
	exitFailed  atomic.Uint64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(l Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a runner with its own supervisor.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: nopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	r.supervisor = NewSupervisor(WithProcessExitCallback(r.onExit))
	return r
}

// Execute starts action without waiting for it. Failures are logged.
func (r *Runner) Execute(action chord.Action, shell []string) {
	cmd, err := Command(action, shell)
	if err != nil {
		r.invalid.Add(1)
		r.logger.Error("cannot run %s: %v", action, err)
		return
	}

	r.wg.Add(1)
	go r.spawn(action.String(), cmd)
}

func (r *Runner) spawn(name string, cmd *exec.Cmd) {
	proc, err := r.supervisor.Start(name, cmd)
	if err != nil {
		r.spawnFailed.Add(1)
		r.logger.Error("failed to start %s: %v", name, err)
		r.wg.Done()
		return
	}
	r.started.Add(1)
	r.logger.Debug("started %s [%s] pid %d", name, proc.ID, proc.PID())
}

func (r *Runner) onExit(p *Process) {
	defer r.wg.Done()

	if err := p.ExitError(); err != nil {
		r.exitFailed.Add(1)
		r.logger.Warn("%s [%s] %s with code %d: %v", p.Name, p.ID, p.State(), p.ExitCode(), err)
		return
	}
	r.logger.Debug("%s [%s] exited after %v", p.Name, p.ID, p.Runtime())
}

// Wait blocks until every action started so far has exited or failed to
// start.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Close refuses further actions. Running processes keep running.
func (r *Runner) Close() {
	r.supervisor.Close()
}

// RunnerStats contains counters for a runner.
type RunnerStats struct {
	// Started is the number of processes started.
	Started uint64

	// Invalid is the number of actions rejected before spawning.
	Invalid uint64

	// SpawnFailed is the number of processes that could not be started.
	SpawnFailed uint64

	// ExitFailed is the number of processes that exited unsuccessfully.
	ExitFailed uint64

	// Running is the number of processes still running.
	Running int
}

// Stats returns a snapshot of the runner counters.
func (r *Runner) Stats() RunnerStats {
	return RunnerStats{
		Started:     r.started.Load(),
		Invalid:     r.invalid.Load(),
		SpawnFailed: r.spawnFailed.Load(),
		ExitFailed:  r.exitFailed.Load(),
		Running:     r.supervisor.Count(),
	}
}
