package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keychord/internal/key"
)

// ErrEmptyPattern is returned when a pattern text contains no key names.
var ErrEmptyPattern = errors.New("empty key pattern")

// Pattern accepts any one of an ordered list of physical keys.
type Pattern struct {
	text string
	keys []key.Key
}

// NewPattern builds a pattern from already resolved keys.
func NewPattern(keys ...key.Key) (Pattern, error) {
	if len(keys) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strings.ToLower(k.String())
	}
	return Pattern{
		text: strings.Join(names, "|"),
		keys: append([]key.Key(nil), keys...),
	}, nil
}

// ParsePattern builds a pattern from text such as "ctrl" or
// "leftctrl|rightctrl". Alternatives are separated by '|'; alias groups
// expand to all of their keys.
func ParsePattern(text string) (Pattern, error) {
	var keys []key.Key
	for _, part := range strings.Split(text, "|") {
		if strings.TrimSpace(part) == "" {
			return Pattern{}, fmt.Errorf("%w in %q", ErrEmptyPattern, text)
		}
		resolved, err := key.Resolve(part)
		if err != nil {
			return Pattern{}, err
		}
		keys = append(keys, resolved...)
	}
	return Pattern{text: text, keys: keys}, nil
}

// MustParsePattern is like ParsePattern but panics on error.
// Intended for tests and static tables.
func MustParsePattern(text string) Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the text the pattern was built from.
func (p Pattern) String() string {
	return p.text
}

// Keys returns the accepted keys in configured order.
func (p Pattern) Keys() []key.Key {
	return append([]key.Key(nil), p.keys...)
}

// Accepts reports whether k is one of the pattern's keys.
func (p Pattern) Accepts(k key.Key) bool {
	for _, accepted := range p.keys {
		if accepted == k {
			return true
		}
	}
	return false
}

// MatchesAny reports whether at least one accepted key is held in s.
func (p Pattern) MatchesAny(s *State) bool {
	for _, k := range p.keys {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// Duplicates returns keys listed more than once in the pattern, each
// reported once, in order of first repetition.
func (p Pattern) Duplicates() []key.Key {
	var dups []key.Key
	seen := make(map[key.Key]int, len(p.keys))
	for _, k := range p.keys {
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
