package runtime

import (
	"fmt"
	"sort"
)

// Environment maps names to values. The interpreter keeps the prelude in a
// global environment and drivers resolve the names they call through it.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the enclosing scope (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or shadows a binding in the current scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, fmt.Errorf("undefined binding '%s'", name)
}

// Keys returns the bindings of this scope in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a child scope.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
