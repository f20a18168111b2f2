package chord

// Match reports whether c matches the held keys in s under opts.
func Match(s *State, c *Chord, opts Options) bool {
	for _, p := range c.Sequence {
		if !p.MatchesAny(s) {
			return false
		}
	}

	if !c.Exclusive(opts) {
		return true
	}

	// Every held key must be accounted for by some pattern.
	for k := range s.held {
		covered := false
		for _, p := range c.Sequence {
			if p.Accepts(k) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// Evaluate walks chords in priority order and returns the actions to fire.
// A matching chord without passthrough ends the walk after contributing its
// own action. The result depends only on the arguments.
func Evaluate(s *State, chords []Chord, opts Options) []Action {
	var actions []Action
	for i := range chords {
		c := &chords[i]
		if !Match(s, c, opts) {
			continue
		}
		actions = append(actions, c.Action)
		if !c.Passthrough(opts) {
			break
		}
	}
	return actions
}
