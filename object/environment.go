// ==============================================================================================
// FILE: object/environment.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: Chained name->value scope, plus the resolver-aware direct-hop
//          operations (Ancestor/GetAt/AssignAt) the evaluator dispatches to
//          for names the resolver has annotated with a hop distance.
//          Frame shape grounded on amoghasbhardwaj-Eloquence/object/
//          environment.go; Ancestor/GetAt/AssignAt are new, per spec.md §4.4.
// ==============================================================================================

package object

// Environment is a frame of name->value bindings plus an optional link to
// the enclosing (outer) frame. A closure pins its defining frame's chain,
// keeping it alive for as long as the closure is reachable.
type Environment struct {
	store map[string]Value
	outer *Environment
}

// NewEnvironment creates a fresh, unenclosed environment — used once, for
// the globals frame that lives for the evaluator's lifetime.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosed creates a new local scope linked to outer — used on function
// entry and block entry.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer}
}

// Define unconditionally inserts name into this frame. Redefinition
// (including of globals) simply overwrites.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// Get looks up name in this frame, falling back to enclosing frames. ok is
// false if name is bound nowhere in the chain.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Assign mutates name in whichever frame already defines it, falling back
// to enclosing frames. ok is false if name is bound nowhere in the chain —
// the caller is expected to surface this as an undefined-variable error.
func (e *Environment) Assign(name string, val Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}

// Ancestor follows the outer chain exactly depth times.
func (e *Environment) Ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.outer
	}
	return env
}

// GetAt looks up name directly in the ancestor at depth, never falling
// back further — the resolver having computed depth already guarantees
// name is bound there.
func (e *Environment) GetAt(depth int, name string) Value {
	val := e.Ancestor(depth).store[name]
	return val
}

// AssignAt mutates name directly in the ancestor at depth, never falling
// back further.
func (e *Environment) AssignAt(depth int, name string, val Value) {
	e.Ancestor(depth).store[name] = val
}
