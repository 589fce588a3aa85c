package rules

import (
	"maps"
	"slices"
	"strings"

	"automapper/ref"
)

// Registry is an immutable set of rules keyed by destination property.
// It is safe for concurrent readers.
type Registry struct {
	rules map[ref.Property]*Rule
}

// Empty returns a Registry without rules, leaving every property to convention.
func Empty() *Registry {
	return &Registry{rules: map[ref.Property]*Rule{}}
}

// Lookup returns the rule registered for p. Only exact matches count.
func (r *Registry) Lookup(p ref.Property) (*Rule, bool) {
	if r == nil {
		return nil, false
	}

	rule, ok := r.rules[p]

	return rule, ok
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.rules)
}

// Rules returns every rule ordered by destination reference.
func (r *Registry) Rules() []*Rule {
	if r == nil {
		return nil
	}

	keys := slices.SortedFunc(maps.Keys(r.rules), func(a, b ref.Property) int {
		return strings.Compare(a.String(), b.String())
	})

	out := make([]*Rule, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.rules[k])
	}

	return out
}
