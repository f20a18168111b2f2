package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks application-level counters. Per-executor counters live in
// the dispatch loops and the runner; Snapshot combines them.
type Metrics struct {
	reloads         atomic.Uint64
	rejectedReloads atomic.Uint64
	executorExits   atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordReload records an applied configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// RecordReloadRejected records a reload that failed validation.
func (m *Metrics) RecordReloadRejected() {
	m.rejectedReloads.Add(1)
}

// RecordExecutorExit records an executor whose input source ended.
func (m *Metrics) RecordExecutorExit() {
	m.executorExits.Add(1)
}

// Snapshot returns the application-level counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Uptime:          time.Since(m.startTime),
		Reloads:         m.reloads.Load(),
		RejectedReloads: m.rejectedReloads.Load(),
		ExecutorExits:   m.executorExits.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime time.Duration

	// Input and matching, summed over executors
	Events    uint64
	Dropped   uint64
	Anomalies uint64
	Resets    uint64
	Actions   uint64
	Panicked  uint64

	// Process execution
	Started       uint64
	SpawnFailures uint64
	ExitFailures  uint64
	Running       int

	// Configuration
	Reloads         uint64
	RejectedReloads uint64

	ExecutorExits uint64
}

// DropRate returns the percentage of input events discarded because a
// queue was full.
func (s MetricsSnapshot) DropRate() float64 {
	total := s.Events + s.Dropped
	if total == 0 {
		return 0
	}
	return float64(s.Dropped) / float64(total) * 100
}

// Metrics returns the application's metrics instance.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Snapshot combines application, dispatch, and runner counters.
func (app *Application) Snapshot() MetricsSnapshot {
	s := app.metrics.Snapshot()

	for _, ex := range app.executors {
		ls := ex.loop.Stats()
		s.Events += ls.Processed
		s.Dropped += ls.Queue.Dropped
		s.Anomalies += ls.Anomalies
		s.Resets += ls.Resets
		s.Actions += ls.Actions
		s.Panicked += ls.Panicked
	}

	if app.runner != nil {
		rs := app.runner.Stats()
		s.Started = rs.Started
		s.SpawnFailures = rs.Invalid + rs.SpawnFailed
		s.ExitFailures = rs.ExitFailed
		s.Running = rs.Running
	}
	return s
}
