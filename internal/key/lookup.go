package key

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// UnknownKeyError is returned when a configured name matches neither a key
// nor an alias group.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key: %s", e.Name)
}

// Normalize folds a configured name into the form used by the lookup tables.
func Normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Lookup returns the single key registered under name.
func Lookup(name string) (Key, bool) {
	k, ok := names[Normalize(name)]
	return k, ok
}

// Group returns the keys an alias group stands for. The returned slice is a
// copy and may be modified by the caller.
func Group(name string) ([]Key, bool) {
	keys, ok := groups[Normalize(name)]
	if !ok {
		return nil, false
	}
	return append([]Key(nil), keys...), true
}

// Resolve turns one name into the keys it accepts. Alias groups take
// precedence over single key names.
func Resolve(name string) ([]Key, error) {
	if keys, ok := Group(name); ok {
		return keys, nil
	}
	if k, ok := Lookup(name); ok {
		return []Key{k}, nil
	}
	return nil, &UnknownKeyError{Name: Normalize(name)}
}

// Names returns every single-key name, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// GroupNames returns every alias group name, sorted.
func GroupNames() []string {
	out := make([]string, 0, len(groups))
	for n := range groups {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NamesFor returns the configuration names that resolve to k, sorted.
func NamesFor(k Key) []string {
	var out []string
	for n, v := range names {
		if v == k {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
