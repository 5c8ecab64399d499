package interp

import "github.com/funvibe/loxvm/internal/value"

// Environment is one lexical scope frame: a name->Value map plus an
// optional parent. The chain is a tree rooted at the global environment
// (spec.md §3); a Function value holds a strong Go reference to the frame
// active at its declaration, which is exactly what lets a frame outlive the
// block that created it once a closure escapes. Ordinary Go garbage
// collection, not an explicit ownership scheme, is what spec.md §5 calls
// "a reference-counted ownership scheme" in its source language — ordinary
// GC subsumes it here.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

// NewEnvironment returns a fresh frame. parent may be nil for the global
// root.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), parent: parent}
}

// Define unconditionally inserts name into this frame, overwriting any
// prior binding in this frame only (spec.md §4.2: redefinition in the same
// frame is permitted).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name starting at this frame and ascending to parents,
// returning the undefined-variable RuntimeError spec.md §4.2/§7 specifies
// on a global miss.
func (e *Environment) Get(name string, line int) (value.Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, &RuntimeError{Message: "Undefined variable '" + name + "'.", Line: line}
}

// Assign walks the chain and updates the first frame that already contains
// name. It never creates a new binding (spec.md §4.2).
func (e *Environment) Assign(name string, v value.Value, line int) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return &RuntimeError{Message: "Undefined variable '" + name + "'.", Line: line}
}

// ancestor walks exactly depth parent links up from e. The resolver
// guarantees the result is non-nil for any depth it recorded.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.parent
	}
	return env
}

// GetAt is the fast path for resolver-resolved locals (spec.md §4.2):
// walk exactly depth parent links, then look up name directly in that
// frame, which the resolver guarantees contains it.
func (e *Environment) GetAt(depth int, name string) value.Value {
	return e.ancestor(depth).values[name]
}

// AssignAt is the resolved-local analogue of Assign.
func (e *Environment) AssignAt(depth int, name string, v value.Value) {
	e.ancestor(depth).values[name] = v
}
