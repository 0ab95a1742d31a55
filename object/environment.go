// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Implements the lexical scope chain used by the evaluator. Tracks, per binding,
//          whether it was declared with மாறாத/const so that reassignment can be rejected.
// ==============================================================================================

package object

import "fmt"

type binding struct {
	value   Object
	isConst bool
}

// Environment is a single lexical scope, optionally chained to an
// enclosing scope. Function calls and block bodies each get a fresh
// Environment so that a function's locals never leak back into the
// caller, and so that closures capture the scope as it existed at
// definition time rather than the one active at call time.
type Environment struct {
	store map[string]binding
	outer *Environment
}

// NewEnvironment creates a fresh top-level environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]binding)}
}

// NewEnclosedEnvironment creates a new scope chained to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get searches the current scope, then walks outward through enclosing
// scopes, returning the first binding found.
func (e *Environment) Get(name string) (Object, bool) {
	if b, ok := e.store[name]; ok {
		return b.value, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define introduces a new binding in the current scope, shadowing any
// binding of the same name in an enclosing scope.
func (e *Environment) Define(name string, value Object, isConst bool) {
	e.store[name] = binding{value: value, isConst: isConst}
}

// IsConst reports whether name was declared with மாறாத/const, searching
// outward through enclosing scopes. The second return value is false if
// no binding for name exists at all.
func (e *Environment) IsConst(name string) (bool, bool) {
	if b, ok := e.store[name]; ok {
		return b.isConst, true
	}
	if e.outer != nil {
		return e.outer.IsConst(name)
	}
	return false, false
}

// Assign rewrites an existing binding in whichever scope of the chain
// declared it, rejecting assignment to a மாறாத/const name and to a name
// that was never declared.
func (e *Environment) Assign(name string, value Object) error {
	if b, ok := e.store[name]; ok {
		if b.isConst {
			return fmt.Errorf("'%s' மாறாத மாறி, மாற்ற இயலாது", name)
		}
		e.store[name] = binding{value: value, isConst: false}
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return fmt.Errorf("வரையறுக்கப்படாத மாறி '%s'", name)
}

// Names returns the binding names declared directly in this scope, not
// including any enclosing scope.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	return names
}
