package input

import (
	"fmt"

	"github.com/dshills/keychord/internal/key"
)

// Kind is the type of an input event.
type Kind uint8

const (
	// KindPressed reports a key going down.
	KindPressed Kind = iota + 1
	// KindReleased reports a key going up.
	KindReleased
	// KindStop reports that the source was reset or disconnected and any
	// held-key state derived from it is no longer trustworthy.
	KindStop
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPressed:
		return "pressed"
	case KindReleased:
		return "released"
	case KindStop:
		return "stop"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is one notification from an input backend. Key is unset for
// KindStop.
type Event struct {
	Kind Kind
	Key  key.Key
}

// Pressed returns a press event for k.
func Pressed(k key.Key) Event {
	return Event{Kind: KindPressed, Key: k}
}

// Released returns a release event for k.
func Released(k key.Key) Event {
	return Event{Kind: KindReleased, Key: k}
}

// Stop returns a source reset event.
func Stop() Event {
	return Event{Kind: KindStop}
}

// String renders the event for logs.
func (e Event) String() string {
	if e.Kind == KindStop {
		return "stop"
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
}
