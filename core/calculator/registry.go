package calculator

import (
	"fmt"
	"sort"
	"sync"

	"kingshot-calc/core/validate"
	apperrors "kingshot-calc/internal/errors"
)

// Registry holds calculators by name
type Registry struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{calculators: make(map[string]Calculator)}
}

// Register adds a calculator. Panics on a duplicate name (fail fast).
func (r *Registry) Register(c Calculator) {
	if err := r.RegisterSafe(c); err != nil {
		panic(err.Error())
	}
}

// RegisterSafe adds a calculator returning error instead of panic
func (r *Registry) RegisterSafe(c Calculator) error {
	name := c.Name()
	if name == "" {
		return apperrors.Internal("calculator has no name", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.calculators[name]; exists {
		return apperrors.Internal(fmt.Sprintf("calculator already registered: %s", name), nil)
	}
	r.calculators[name] = c
	return nil
}

// Get returns a calculator by name, or UnknownKey with suggestions
func (r *Registry) Get(name string) (Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.calculators[name]; ok {
		return c, nil
	}
	return nil, apperrors.UnknownKey("calculator", name, validate.Suggest(name, r.namesLocked()))
}

// Names returns registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// List returns calculators sorted by name
func (r *Registry) List() []Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Calculator, 0, len(r.calculators))
	for _, name := range r.namesLocked() {
		out = append(out, r.calculators[name])
	}
	return out
}

// Count returns the number of registered calculators
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.calculators)
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.calculators))
	for name := range r.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
