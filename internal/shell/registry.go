package shell

import (
	"context"
	"sort"
)

// handlerFunc executes one command. args have already passed arity
// validation.
type handlerFunc func(ctx context.Context, args []string) Outcome

// operation is one registry row: a command name, its required positional
// argument count, and its handler.
type operation struct {
	name  string
	arity int

	// joinRest marks single-argument operations whose argument is
	// semantically the rest of the line, so tokens are rejoined with spaces
	// to support names containing them.
	joinRest bool

	run handlerFunc
}

// Registry maps command names to operations.
type Registry struct {
	ops map[string]operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]operation)}
}

// Register adds an operation, replacing any previous one of the same name.
func (r *Registry) Register(op operation) {
	r.ops[op.name] = op
}

// Lookup finds the operation registered under name.
func (r *Registry) Lookup(name string) (operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
