// Package chord implements the chord-matching core of keychord: key
// patterns, chord definitions, the held-key state tracker, and the matching
// engine that turns a state into an ordered list of actions.
//
// # Matching
//
// A chord matches inclusively when every pattern in its sequence has at
// least one accepted key held. With exclusive matching enabled the chord
// must also account for every held key: each held key has to be accepted by
// some pattern in the sequence.
//
// Chords are evaluated in priority order. Each matching chord contributes
// its action; a matching chord whose effective passthrough is false ends the
// walk after its own action. Chords that do not match never end the walk.
//
//	state := chord.NewState()
//	state.Apply(input.Pressed(key.LeftCtrl)) // via the dispatch loop
//	actions := chord.Evaluate(state, chords, chord.DefaultOptions())
//
// # Ownership
//
// Pattern, Chord, Action, and Bindings values are immutable once built and
// may be shared between goroutines. State is owned by a single dispatch
// loop and is not safe for concurrent use.
package chord
