// Package input defines the key events produced by input backends and the
// bounded queue that carries them to a dispatch loop.
//
// # Events
//
// A backend reports three kinds of event: a key was pressed, a key was
// released, or the source was reset. A Stop event tells the consumer that
// any held-key state derived from earlier events is no longer trustworthy,
// for example after a device was unplugged.
//
// # Queue
//
// Each executor owns one Queue with a single producer and a single consumer.
// The producer never blocks on a full queue: TryPush drops the event and
// returns ErrQueueFull, and the drop is counted in Stats. Dropped events can
// leave the consumer with a stale view of held keys, which it reports as an
// anomaly.
//
//	q := input.NewQueue(input.DefaultQueueSize)
//	go func() {
//	    defer q.Close()
//	    _ = q.TryPush(input.Pressed(key.LeftCtrl))
//	}()
//	for ev := range q.Events() {
//	    handle(ev)
//	}
//
// The producer closes the queue when it is done. The consumer calls Detach
// when it stops early, after which pushes fail with ErrConsumerGone.
package input
