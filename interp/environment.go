package interp

import (
	"github.com/cwbudde/go-tlox/errors"
	"github.com/cwbudde/go-tlox/token"
)

// Environment is a lexically nested scope: a mapping from name to value plus
// an optional enclosing scope.
type Environment struct {
	values map[string]Value
	outer  *Environment
}

func NewEnvironment(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), outer: outer}
}

// Define creates or replaces an entry in the current scope only.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get searches the current scope then enclosings, returning a clone of the
// stored value so that collections read out of the environment never alias
// the stored binding.
func (e *Environment) Get(tok token.Token) (Value, *errors.RuntimeError) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.values[tok.Lexeme]; ok {
			return v.Clone(), nil
		}
	}
	return nil, errors.NewUndefinedVariable(tok)
}

// GetRaw is like Get but returns the stored value without cloning, for
// callers (the Place machinery) that intend to mutate it in place before
// writing it back through Assign.
func (e *Environment) GetRaw(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign writes to the innermost scope that already has an entry for name.
func (e *Environment) Assign(tok token.Token, value Value) *errors.RuntimeError {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.values[tok.Lexeme]; ok {
			env.values[tok.Lexeme] = value
			return nil
		}
	}
	return errors.NewUndefinedVariable(tok)
}

// Has reports whether name is bound anywhere in the scope chain.
func (e *Environment) Has(name string) bool {
	_, ok := e.GetRaw(name)
	return ok
}

// Snapshot deep-copies the entire scope chain, the capture strategy a
// closure uses at definition time: capture is by value, not by reference.
// Later definitions in an outer scope are invisible to a closure holding a
// snapshot.
func (e *Environment) Snapshot() *Environment {
	if e == nil {
		return nil
	}
	clone := &Environment{values: make(map[string]Value, len(e.values)), outer: e.outer.Snapshot()}
	for k, v := range e.values {
		clone.values[k] = v.Clone()
	}
	return clone
}
