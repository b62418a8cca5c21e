package puzzle

import (
	"fmt"
	"slices"
)

// Registry maps puzzle keys to solvers. It is filled once at startup and
// only read afterwards, so it carries no locking.
type Registry struct {
	solvers map[Key]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: map[Key]Solver{}}
}

// Register installs a solver. Returns an error if the key is invalid or
// already taken.
func (r *Registry) Register(year, day int, s Solver) error {
	key := Key{Year: year, Day: day}
	if year <= 0 || day <= 0 {
		return fmt.Errorf("puzzle: invalid key %s", key)
	}
	if s == nil {
		return fmt.Errorf("puzzle: solver is required for %s", key)
	}
	if _, exists := r.solvers[key]; exists {
		return fmt.Errorf("puzzle: %s already registered", key)
	}
	r.solvers[key] = s
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(year, day int, s Solver) {
	if err := r.Register(year, day, s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver for the given day, if any.
func (r *Registry) Lookup(year, day int) (Solver, bool) {
	s, ok := r.solvers[Key{Year: year, Day: day}]
	return s, ok
}

// Len reports the number of registered solvers.
func (r *Registry) Len() int { return len(r.solvers) }

// Keys returns every registered key in ascending order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return keys
}

// Choices derives the year -> days view used by the selector.
func (r *Registry) Choices() Choices {
	c := Choices{}
	for _, k := range r.Keys() {
		c[k.Year] = append(c[k.Year], k.Day)
	}
	return c
}
