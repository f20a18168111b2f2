// Package dispatch runs the consumer side of an input source.
//
// A Loop owns the held-key state for one input queue. For every event it
// updates the state, evaluates the current bindings, and hands each
// resulting action to an Executor without waiting for it:
//
//	loop := dispatch.New(queue, runner, bindings, dispatch.WithLogger(log))
//	err := loop.Run(ctx) // ErrSourceClosed once the producer closes the queue
//
// # Bindings
//
// Bindings are an immutable snapshot. SetBindings replaces the snapshot
// atomically; the loop picks it up on the next event. The held-key state is
// not affected by a swap.
//
// # Panic Recovery
//
// A panicking Executor does not take the loop down. The panic is counted
// and reported through the configured PanicHandler.
package dispatch
