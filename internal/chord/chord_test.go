package chord

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/key"
)

func boolPtr(b bool) *bool { return &b }

func seq(names ...string) []Pattern {
	out := make([]Pattern, len(names))
	for i, n := range names {
		out[i] = MustParsePattern(n)
	}
	return out
}

func commands(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Command
	}
	return out
}

func TestState_DuplicatePress(t *testing.T) {
	s := NewState()

	if got := s.Apply(input.Pressed(key.A)); got != AnomalyNone {
		t.Errorf("first press anomaly = %v, want none", got)
	}
	if got := s.Apply(input.Pressed(key.A)); got != AnomalyDuplicatePress {
		t.Errorf("second press anomaly = %v, want duplicate press", got)
	}
	if s.Len() != 1 || !s.Contains(key.A) {
		t.Errorf("state = %v, want [A]", s.Keys())
	}
}

func TestState_DuplicateRelease(t *testing.T) {
	s := StateOf(key.B)

	if got := s.Apply(input.Released(key.A)); got != AnomalyDuplicateRelease {
		t.Errorf("anomaly = %v, want duplicate release", got)
	}
	if !reflect.DeepEqual(s.Keys(), []key.Key{key.B}) {
		t.Errorf("state = %v, want [B]", s.Keys())
	}

	if got := s.Apply(input.Released(key.B)); got != AnomalyNone {
		t.Errorf("anomaly = %v, want none", got)
	}
	if s.Len() != 0 {
		t.Errorf("state = %v, want empty", s.Keys())
	}
}

func TestState_StopClearsAll(t *testing.T) {
	s := StateOf(key.LeftCtrl, key.A, key.B, key.F12)

	if got := s.Apply(input.Stop()); got != AnomalyNone {
		t.Errorf("anomaly = %v, want none", got)
	}
	if s.Len() != 0 {
		t.Errorf("state = %v, want empty", s.Keys())
	}

	// Stop on an empty state is fine too.
	s.Apply(input.Stop())
	if s.Len() != 0 {
		t.Error("expected empty state")
	}
}

func TestState_KeysSorted(t *testing.T) {
	s := StateOf(key.B, key.Esc, key.A)
	want := []key.Key{key.Esc, key.A, key.B}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("ctrl|shift")
	if err != nil {
		t.Fatalf("ParsePattern() failed: %v", err)
	}
	want := []key.Key{key.LeftCtrl, key.RightCtrl, key.LeftShift, key.RightShift}
	if got := p.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if p.String() != "ctrl|shift" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestParsePattern_Errors(t *testing.T) {
	if _, err := ParsePattern(""); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("empty: err = %v, want ErrEmptyPattern", err)
	}
	if _, err := ParsePattern("a||b"); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("a||b: err = %v, want ErrEmptyPattern", err)
	}

	_, err := ParsePattern("a|bogus")
	var unknown *key.UnknownKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownKeyError", err)
	}
	if unknown.Name != "bogus" {
		t.Errorf("Name = %q, want bogus", unknown.Name)
	}
}

func TestPattern_Duplicates(t *testing.T) {
	p := MustParsePattern("ctrl|leftctrl|a|a|a")
	want := []key.Key{key.LeftCtrl, key.A}
	if got := p.Duplicates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Duplicates() = %v, want %v", got, want)
	}
	// Duplicates do not affect matching.
	if !p.MatchesAny(StateOf(key.A)) {
		t.Error("expected pattern to match A")
	}

	// Overlap is reported whichever side names the group.
	rev := MustParsePattern("leftctrl|ctrl")
	if got := rev.Duplicates(); !reflect.DeepEqual(got, []key.Key{key.LeftCtrl}) {
		t.Errorf("Duplicates() = %v, want [LeftCtrl]", got)
	}
}

func TestNewPattern(t *testing.T) {
	if _, err := NewPattern(); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("err = %v, want ErrEmptyPattern", err)
	}
	p, err := NewPattern(key.LeftAlt, key.RightAlt)
	if err != nil {
		t.Fatalf("NewPattern() failed: %v", err)
	}
	if p.String() != "leftalt|rightalt" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestPattern_RoundTrip(t *testing.T) {
	p := MustParsePattern("ctrl|shift")

	if !p.MatchesAny(StateOf(key.RightShift)) {
		t.Error("expected ctrl|shift to match {RightShift}")
	}
	if p.MatchesAny(StateOf(key.A, key.LeftAlt, key.Space)) {
		t.Error("expected ctrl|shift not to match a state without ctrl or shift")
	}
}

func TestMatch_NonExclusiveSuperset(t *testing.T) {
	c := Chord{Sequence: seq("ctrl", "a"), Action: Shell("x")}
	s := StateOf(key.LeftCtrl, key.A, key.B, key.C)

	if !Match(s, &c, Options{Exclusive: false}) {
		t.Error("non-exclusive chord should match a superset")
	}
}

func TestMatch_ExclusiveRejectsSuperset(t *testing.T) {
	c := Chord{Sequence: seq("ctrl", "a"), Action: Shell("x")}
	opts := Options{Exclusive: true}

	if Match(StateOf(key.LeftCtrl, key.A, key.B, key.C), &c, opts) {
		t.Error("exclusive chord should reject extra held keys")
	}
	if !Match(StateOf(key.LeftCtrl, key.A), &c, opts) {
		t.Error("exclusive chord should match its exact footprint")
	}
	// Both sides of an alias group are within the footprint.
	if !Match(StateOf(key.LeftCtrl, key.RightCtrl, key.A), &c, opts) {
		t.Error("exclusive chord should accept every key of a pattern")
	}
}

func TestMatch_InclusiveFailure(t *testing.T) {
	c := Chord{Sequence: seq("ctrl", "a"), Action: Shell("x")}
	if Match(StateOf(key.LeftCtrl), &c, DefaultOptions()) {
		t.Error("chord should not match when a pattern has no held key")
	}
	if Match(NewState(), &c, Options{Exclusive: true}) {
		t.Error("exclusive chord should not match the empty state")
	}
}

func TestChord_EffectiveOptions(t *testing.T) {
	global := Options{Passthrough: true, Exclusive: false}

	c := Chord{}
	if !c.Passthrough(global) || c.Exclusive(global) {
		t.Error("chord without override should use global options")
	}

	c.Override = &Override{Exclusive: boolPtr(true)}
	if !c.Passthrough(global) || !c.Exclusive(global) {
		t.Error("partial override should only replace exclusive")
	}

	c.Override = &Override{Passthrough: boolPtr(false)}
	if c.Passthrough(global) {
		t.Error("override should disable passthrough")
	}
}

func TestEvaluate_PassthroughPrefix(t *testing.T) {
	chords := []Chord{
		{Sequence: seq("a"), Action: Shell("c1"), Override: &Override{Passthrough: boolPtr(true)}},
		{Sequence: seq("a"), Action: Shell("c2"), Override: &Override{Passthrough: boolPtr(false)}},
		{Sequence: seq("a"), Action: Shell("c3"), Override: &Override{Passthrough: boolPtr(true)}},
	}

	got := commands(Evaluate(StateOf(key.A), chords, DefaultOptions()))
	want := []string{"c1", "c2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestEvaluate_NonMatchDoesNotStopWalk(t *testing.T) {
	chords := []Chord{
		{Sequence: seq("b"), Action: Shell("miss"), Override: &Override{Passthrough: boolPtr(false)}},
		{Sequence: seq("a"), Action: Shell("hit")},
	}

	got := commands(Evaluate(StateOf(key.A), chords, Options{Passthrough: false}))
	if !reflect.DeepEqual(got, []string{"hit"}) {
		t.Errorf("Evaluate() = %v, want [hit]", got)
	}
}

func TestEvaluate_GlobalNoPassthrough(t *testing.T) {
	chords := []Chord{
		{Sequence: seq("a"), Action: Shell("first")},
		{Sequence: seq("a"), Action: Shell("second")},
	}

	got := commands(Evaluate(StateOf(key.A), chords, Options{Passthrough: false}))
	if !reflect.DeepEqual(got, []string{"first"}) {
		t.Errorf("Evaluate() = %v, want [first]", got)
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	held := StateOf(key.LeftCtrl, key.A, key.B, key.C, key.D)
	global := Options{Passthrough: true, Exclusive: false}

	tests := []struct {
		name   string
		chords []Chord
		want   []string
	}{
		{
			name: "all non-exclusive passthrough",
			chords: []Chord{
				{Sequence: seq("ctrl", "a"), Action: Shell("one")},
				{Sequence: seq("ctrl", "a", "b"), Action: Shell("two")},
				{Sequence: seq("ctrl", "a", "b", "c"), Action: Shell("three")},
				{Sequence: seq("ctrl", "a", "b", "z"), Action: Shell("not matching")},
			},
			want: []string{"one", "two", "three"},
		},
		{
			name: "second chord stops the walk",
			chords: []Chord{
				{Sequence: seq("ctrl", "a"), Action: Shell("one")},
				{Sequence: seq("ctrl", "a", "b"), Action: Shell("two"), Override: &Override{Passthrough: boolPtr(false)}},
				{Sequence: seq("ctrl", "a", "b", "c"), Action: Shell("three")},
				{Sequence: seq("ctrl", "a", "b", "z"), Action: Shell("not matching")},
			},
			want: []string{"one", "two"},
		},
		{
			name: "exclusive override rejects extra keys",
			chords: []Chord{
				{Sequence: seq("ctrl", "a"), Action: Shell("one")},
				{Sequence: seq("ctrl", "a", "b"), Action: Shell("two"), Override: &Override{Exclusive: boolPtr(true)}},
				{Sequence: seq("ctrl", "a", "b", "c"), Action: Shell("three")},
				{Sequence: seq("ctrl", "a", "b", "z"), Action: Shell("not matching")},
			},
			want: []string{"one", "three"},
		},
		{
			name:   "no chords",
			chords: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commands(Evaluate(held, tt.chords, global))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	chords := []Chord{
		{Sequence: seq("ctrl", "a"), Action: Shell("one")},
		{Sequence: seq("ctrl|alt", "a|b"), Action: Command("two", "--flag")},
		{Sequence: seq("shift"), Action: Shell("three")},
	}
	s := StateOf(key.LeftCtrl, key.RightAlt, key.A, key.B)

	first := Evaluate(s, chords, DefaultOptions())
	for i := 0; i < 50; i++ {
		if got := Evaluate(s, chords, DefaultOptions()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Evaluate() = %v, want %v", i, got, first)
		}
	}
	if s.Len() != 4 {
		t.Error("Evaluate must not modify the state")
	}
}

func TestBindings_Evaluate(t *testing.T) {
	b := &Bindings{
		Chords:  []Chord{{Sequence: seq("meta", "enter"), Action: Command("alacritty")}},
		Options: DefaultOptions(),
	}

	got := b.Evaluate(StateOf(key.RightMeta, key.Enter))
	if len(got) != 1 || got[0].Kind != ActionCommand || got[0].Argv[0] != "alacritty" {
		t.Errorf("Evaluate() = %v", got)
	}
}

func TestAction_String(t *testing.T) {
	if got := Shell("echo hi").String(); got != "echo hi" {
		t.Errorf("Shell String() = %q", got)
	}
	if got := Command("notify-send", "hi there").String(); got != `["notify-send" "hi there"]` {
		t.Errorf("Command String() = %q", got)
	}
	if ActionShell.String() != "shell" || ActionCommand.String() != "command" {
		t.Error("unexpected ActionKind names")
	}
}

func TestChord_String(t *testing.T) {
	c := Chord{Sequence: seq("ctrl", "alt|shift", "t")}
	if got := c.String(); got != "ctrl+alt|shift+t" {
		t.Errorf("String() = %q", got)
	}
}
