/*
File    : rloxj/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the runtime variable-binding chain the
// interpreter reads and writes (spec section 4.4). It is grounded on the
// teacher's Scope type (scope/scope.go) — same Variables map plus Parent
// pointer, same LookUp/Bind/Assign shape — stripped of GoMix's Consts,
// LetVars and LetTypes bookkeeping (Lox has no const/let distinction), and
// given an Ancestor walker so the interpreter can jump straight to the
// scope the resolver already located instead of re-searching the chain.
package environment

import (
	"fmt"

	"github.com/akashmaji946/rloxj/object"
	"github.com/akashmaji946/rloxj/token"
)

// Environment is one lexical scope's variable bindings, linked to its
// enclosing scope to form the runtime scope chain. Parent is nil only for
// the global environment.
type Environment struct {
	values map[string]object.Value
	Parent *Environment
}

// New creates a fresh environment nested inside parent. Pass nil to create
// the global environment.
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]object.Value),
		Parent: parent,
	}
}

// Define binds name to value in this environment, overwriting any existing
// binding of the same name in this scope only — this is how Lox allows
// "var a = 1; var a = 2;" to redeclare a variable in the same block.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get looks up name starting at this environment and walking outward
// through Parent. A name absent from the entire chain is a runtime error,
// reported with the offending token's position (spec section 4.4).
func (e *Environment) Get(name token.Token) (object.Value, error) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// GetAt looks up name in the environment exactly depth hops outward from e,
// used by the interpreter when the resolver has already determined the
// scope distance (spec section 4.3). It bypasses the undefined-variable
// search entirely since the resolver guarantees the binding exists there.
func (e *Environment) GetAt(depth int, name string) object.Value {
	env := e.Ancestor(depth)
	return env.values[name]
}

// Assign rebinds an existing name to a new value in place, searching this
// environment and its ancestors for where the name was originally defined.
// Assigning to a name that was never declared anywhere in the chain is a
// runtime error (spec section 4.4) — unlike Define, Assign never creates a
// new binding.
func (e *Environment) Assign(name token.Token, value object.Value) error {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'.", name.Lexeme)
}

// AssignAt rebinds name in the environment exactly depth hops outward from
// e, the resolved-distance counterpart to Assign.
func (e *Environment) AssignAt(depth int, name string, value object.Value) {
	env := e.Ancestor(depth)
	env.values[name] = value
}

// Ancestor walks depth hops up the Parent chain and returns the
// environment found there. depth 0 returns e itself. The resolver
// guarantees depth never walks past the global environment.
func (e *Environment) Ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Parent
	}
	return env
}
