package chord

import (
	"fmt"
	"strings"
)

// ActionKind distinguishes the two ways an action can be executed.
type ActionKind int

const (
	// ActionShell is a free-text command run through the configured shell.
	ActionShell ActionKind = iota
	// ActionCommand is a literal argv executed directly.
	ActionCommand
)

// String returns the kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionShell:
		return "shell"
	case ActionCommand:
		return "command"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is what a matching chord triggers.
type Action struct {
	Kind    ActionKind
	Command string   // set for ActionShell
	Argv    []string // set for ActionCommand
}

// Shell returns a shell action.
func Shell(command string) Action {
	return Action{Kind: ActionShell, Command: command}
}

// Command returns a literal argv action.
func Command(argv ...string) Action {
	return Action{Kind: ActionCommand, Argv: append([]string(nil), argv...)}
}

// String renders the action for logs.
func (a Action) String() string {
	if a.Kind == ActionCommand {
		return fmt.Sprintf("%q", a.Argv)
	}
	return a.Command
}

// Options are the engine-wide matching defaults.
type Options struct {
	Passthrough bool
	Exclusive   bool
}

// DefaultOptions returns passthrough enabled and exclusive matching
// disabled.
func DefaultOptions() Options {
	return Options{Passthrough: true, Exclusive: false}
}

// Override replaces individual global options for one chord. Nil fields
// fall back to the global value.
type Override struct {
	Passthrough *bool
	Exclusive   *bool
}

// Chord binds a sequence of patterns to an action.
type Chord struct {
	Sequence []Pattern
	Action   Action
	Override *Override
}

// Passthrough returns the effective passthrough flag under opts.
func (c *Chord) Passthrough(opts Options) bool {
	if c.Override != nil && c.Override.Passthrough != nil {
		return *c.Override.Passthrough
	}
	return opts.Passthrough
}

// Exclusive returns the effective exclusive flag under opts.
func (c *Chord) Exclusive(opts Options) bool {
	if c.Override != nil && c.Override.Exclusive != nil {
		return *c.Override.Exclusive
	}
	return opts.Exclusive
}

// String renders the sequence as "ctrl+alt+t".
func (c *Chord) String() string {
	parts := make([]string, len(c.Sequence))
	for i, p := range c.Sequence {
		parts[i] = p.String()
	}
	return strings.Join(parts, "+")
}

// Bindings is the immutable set of chords, options, and shell one dispatch
// loop evaluates against. Replace it wholesale; never mutate it.
type Bindings struct {
	Chords  []Chord
	Options Options
	Shell   []string
}

// Evaluate runs the matching engine over the bindings.
func (b *Bindings) Evaluate(s *State) []Action {
	return Evaluate(s, b.Chords, b.Options)
}
