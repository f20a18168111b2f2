// Package process starts the external commands bound to chords.
//
// A Runner turns a chord.Action into an exec.Cmd and starts it in the
// background. Shell actions run as shell[0] shell[1:]... command; command
// actions run their argv directly. Standard input, output, and error are
// the null device.
//
//	runner := process.NewRunner(process.WithLogger(log))
//	runner.Execute(chord.Shell("notify-send hi"), []string{"/bin/sh", "-c"})
//
// Actions are fire-and-forget. Spawn and exit failures are logged with the
// process ID and counted, never returned to the caller.
//
// # Supervisor
//
// The Supervisor tracks processes that are still running and reports each
// exit through a callback:
//
//	supervisor := process.NewSupervisor(process.WithProcessExitCallback(onExit))
//	proc, err := supervisor.Start("notify-send hi", cmd)
//	<-proc.Done()
//	fmt.Printf("Exit code: %d\n", proc.ExitCode())
//
// Closing the supervisor refuses new processes but leaves running ones
// alone.
package process
