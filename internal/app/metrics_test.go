package app

import (
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics() returned nil")
	}

	snapshot := m.Snapshot()
	if snapshot.Reloads != 0 || snapshot.RejectedReloads != 0 || snapshot.ExecutorExits != 0 {
		t.Errorf("expected zero counters, got %+v", snapshot)
	}
}

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics()

	m.RecordReload()
	m.RecordReload()
	m.RecordReloadRejected()
	m.RecordExecutorExit()

	snapshot := m.Snapshot()
	if snapshot.Reloads != 2 {
		t.Errorf("expected 2 reloads, got %d", snapshot.Reloads)
	}
	if snapshot.RejectedReloads != 1 {
		t.Errorf("expected 1 rejected reload, got %d", snapshot.RejectedReloads)
	}
	if snapshot.ExecutorExits != 1 {
		t.Errorf("expected 1 executor exit, got %d", snapshot.ExecutorExits)
	}
}

func TestMetrics_Snapshot_Uptime(t *testing.T) {
	m := NewMetrics()
	time.Sleep(10 * time.Millisecond)

	if m.Snapshot().Uptime < 10*time.Millisecond {
		t.Error("expected uptime >= 10ms")
	}
}

func TestMetricsSnapshot_DropRate(t *testing.T) {
	tests := []struct {
		name     string
		snapshot MetricsSnapshot
		expected float64
	}{
		{
			name:     "no events",
			snapshot: MetricsSnapshot{},
			expected: 0,
		},
		{
			name:     "no drops",
			snapshot: MetricsSnapshot{Events: 100},
			expected: 0,
		},
		{
			name:     "quarter dropped",
			snapshot: MetricsSnapshot{Events: 75, Dropped: 25},
			expected: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snapshot.DropRate(); got != tt.expected {
				t.Errorf("DropRate() = %f, expected %f", got, tt.expected)
			}
		})
	}
}
