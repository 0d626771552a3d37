// Package ops exposes every sequence operation under a stable name with a
// uniform signature, so operations can be driven from data (suite files) and
// from the command line.
package ops

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"seq-rebuild/internal/diagnostic"
	"seq-rebuild/node"
	"seq-rebuild/primitive"
)

var (
	// ErrUnknownOp is returned by Call for names that are not registered.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArity is returned when the argument count is out of range.
	ErrArity = errors.New("wrong number of arguments")
	// ErrArgKind is returned when an argument has the wrong kind.
	ErrArgKind = errors.New("wrong argument kind")
)

// Func evaluates an operation on already checked arguments.
type Func func(args []node.Value) (node.Value, error)

// Op describes one registered operation.
type Op struct {
	Name        string
	Description string
	// Params lists the expected kind of each argument. Zero accepts any kind.
	Params []primitive.KindEnum
	// Required is the number of leading Params that must be supplied.
	Required int
	Func     Func
	// Lint reports suspicious but accepted arguments, e.g. a negative depth.
	// Paths in the findings start with the given prefix. It may be nil.
	Lint func(args []node.Value, prefix string) diagnostic.Diagnostics
}

// Options tune the value operations of a registry.
type Options struct {
	// MaxNesting is passed to validation; zero means node.DefaultMaxNesting.
	MaxNesting int
	// DefaultDepth is used by flattenDepth when no depth argument is given.
	DefaultDepth int
}

// Registry holds operations and provides lookup.
type Registry struct {
	ops map[string]*Op
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ops: make(map[string]*Op),
	}
}

// Add adds an operation to the registry, replacing any previous one with the same name.
func (r *Registry) Add(op *Op) {
	r.ops[op.Name] = op
}

// Get returns an operation by name, or nil if not found.
func (r *Registry) Get(name string) *Op {
	return r.ops[name]
}

// Has returns true if an operation with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.ops[name]
	return exists
}

// Names returns all operation names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// All returns all operations sorted by name.
func (r *Registry) All() []*Op {
	names := r.Names()
	result := make([]*Op, 0, len(names))
	for _, name := range names {
		result = append(result, r.ops[name])
	}

	return result
}

// Call checks args against the operation's parameters and evaluates it.
func (r *Registry) Call(name string, args []node.Value) (node.Value, error) {
	op := r.Get(name)
	if op == nil {
		if hints := r.Suggest(name); len(hints) > 0 {
			return node.Value{}, fmt.Errorf("%w: %q, did you mean %s?", ErrUnknownOp, name, strings.Join(hints, " or "))
		}
		return node.Value{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}

	if err := op.check(args); err != nil {
		return node.Value{}, err
	}

	return op.Func(args)
}

// Lint returns the findings of the named operation's Lint hook for args.
// Unknown operations and operations without a hook report nothing.
func (r *Registry) Lint(name string, args []node.Value, prefix string) diagnostic.Diagnostics {
	op := r.Get(name)
	if op == nil || op.Lint == nil || op.check(args) != nil {
		return diagnostic.Diagnostics{}
	}

	return op.Lint(args, prefix)
}

func (op *Op) check(args []node.Value) error {
	if len(args) < op.Required || len(args) > len(op.Params) {
		if op.Required == len(op.Params) {
			return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op.Name, op.Required, len(args))
		}
		return fmt.Errorf("%w: %s takes %d to %d, got %d",
			ErrArity, op.Name, op.Required, len(op.Params), len(args))
	}

	for i, arg := range args {
		want := op.Params[i]
		if want != 0 && arg.Kind() != want {
			return fmt.Errorf("%w: %s argument %d must be %s, got %s",
				ErrArgKind, op.Name, i+1, want, arg.Kind())
		}
	}

	return nil
}
