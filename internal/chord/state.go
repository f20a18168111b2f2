package chord

import (
	"sort"

	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/key"
)

// Anomaly describes an event that disagreed with the tracked state.
type Anomaly int

const (
	// AnomalyNone means the event was consistent with the state.
	AnomalyNone Anomaly = iota
	// AnomalyDuplicatePress means a press arrived for a key already held.
	AnomalyDuplicatePress
	// AnomalyDuplicateRelease means a release arrived for a key not held.
	AnomalyDuplicateRelease
)

// String returns a short description of the anomaly.
func (a Anomaly) String() string {
	switch a {
	case AnomalyNone:
		return "none"
	case AnomalyDuplicatePress:
		return "duplicate press"
	case AnomalyDuplicateRelease:
		return "duplicate release"
	default:
		return "unknown"
	}
}

// State is the set of currently held keys.
type State struct {
	held map[key.Key]struct{}
}

// NewState returns an empty state.
func NewState() *State {
	return &State{held: make(map[key.Key]struct{}, 16)}
}

// StateOf returns a state holding exactly keys. Used by tests and tooling.
func StateOf(keys ...key.Key) *State {
	s := NewState()
	for _, k := range keys {
		s.held[k] = struct{}{}
	}
	return s
}

// Apply updates the state with ev. Inconsistent presses and releases are
// reported but otherwise treated as idempotent inserts and removes.
func (s *State) Apply(ev input.Event) Anomaly {
	switch ev.Kind {
	case input.KindPressed:
		if _, ok := s.held[ev.Key]; ok {
			return AnomalyDuplicatePress
		}
		s.held[ev.Key] = struct{}{}
	case input.KindReleased:
		if _, ok := s.held[ev.Key]; !ok {
			return AnomalyDuplicateRelease
		}
		delete(s.held, ev.Key)
	case input.KindStop:
		s.Clear()
	}
	return AnomalyNone
}

// Clear forgets every held key.
func (s *State) Clear() {
	clear(s.held)
}

// Contains reports whether k is held.
func (s *State) Contains(k key.Key) bool {
	_, ok := s.held[k]
	return ok
}

// Len returns the number of held keys.
func (s *State) Len() int {
	return len(s.held)
}

// Keys returns the held keys in enumeration order.
func (s *State) Keys() []key.Key {
	keys := make([]key.Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
