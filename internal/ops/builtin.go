package ops

import (
	"fmt"
	"math"

	"seq-rebuild/internal/casing"
	"seq-rebuild/internal/diagnostic"
	"seq-rebuild/internal/flatten"
	"seq-rebuild/internal/nested"
	"seq-rebuild/internal/percent"
	"seq-rebuild/internal/scan"
	"seq-rebuild/internal/seq"
	"seq-rebuild/node"
	"seq-rebuild/primitive"
)

const (
	str     = primitive.KindString
	arr     = primitive.KindArray
	num     = primitive.KindNumber
	anyKind = primitive.KindEnum(0)
)

// Default returns a registry with every built-in operation.
func Default(opts Options) *Registry {
	r := NewRegistry()
	registerStrings(r)
	registerSequences(r, opts)

	return r
}

func registerStrings(r *Registry) {
	r.Add(unary("trim", "strip spaces, tabs and newlines from both ends", scan.Trim))
	r.Add(unary("trimLeft", "strip leading spaces, tabs and newlines", scan.TrimLeft))
	r.Add(unary("trimRight", "strip trailing spaces, tabs and newlines", scan.TrimRight))
	r.Add(unary("camelCase", "turn kebab-case into camelCase", casing.CamelCase))
	r.Add(unary("kebabCase", "turn camelCase into kebab-case", casing.KebabCase))

	r.Add(ternary("replace", "replace the leftmost occurrence of FROM with TO", scan.Replace))
	r.Add(ternary("replaceAll", "replace every occurrence of FROM with TO", scan.ReplaceAll))

	r.Add(&Op{
		Name:        "percentageParser",
		Description: "split a percentage into [sign, digits, unit]",
		Params:      []primitive.KindEnum{str},
		Required:    1,
		Func: func(args []node.Value) (node.Value, error) {
			s, _ := args[0].AsString()
			res := percent.Parse(s)
			return node.Array(node.String(res.Sign), node.String(res.Digits), node.String(res.Unit)), nil
		},
	})
}

func registerSequences(r *Registry, opts Options) {
	flattener := flatten.Flattener{MaxNesting: opts.MaxNesting}
	defaultDepth := opts.DefaultDepth
	if defaultDepth <= 0 {
		defaultDepth = flatten.DefaultDepth
	}

	r.Add(&Op{
		Name:        "flattenDepth",
		Description: "flatten nested arrays up to DEPTH levels (default 1)",
		Params:      []primitive.KindEnum{arr, num},
		Required:    1,
		Func: func(args []node.Value) (node.Value, error) {
			depth := defaultDepth
			if len(args) > 1 {
				d, err := intArg(args[1])
				if err != nil {
					return node.Value{}, err
				}
				depth = d
			}
			out, err := flattener.Depth(args[0].Elems(), depth)
			if err != nil {
				return node.Value{}, err
			}
			return node.Array(out...), nil
		},
		Lint: func(args []node.Value, prefix string) diagnostic.Diagnostics {
			var diags diagnostic.Diagnostics
			if len(args) > 1 {
				if d, _ := args[1].AsNumber(); d < 0 {
					diags.AddWarning(diagnostic.CodeNegative,
						fmt.Sprintf("depth %s is treated as 0", args[1]), fmt.Sprintf("%s[1]", prefix))
				}
			}
			return diags
		},
	})

	r.Add(&Op{
		Name:        "reverse",
		Description: "reverse the order of an array",
		Params:      []primitive.KindEnum{arr},
		Required:    1,
		Func: func(args []node.Value) (node.Value, error) {
			return node.Array(seq.Reverse(args[0].Elems())...), nil
		},
	})

	r.Add(&Op{
		Name:        "includes",
		Description: "report whether an array holds exactly VALUE",
		Params:      []primitive.KindEnum{arr, anyKind},
		Required:    2,
		Func: func(args []node.Value) (node.Value, error) {
			elems := args[0].Elems()
			if err := node.Validate(append(elems, args[1]), opts.MaxNesting); err != nil {
				return node.Value{}, fmt.Errorf("includes: %w", err)
			}
			return node.Bool(seq.Includes(elems, args[1])), nil
		},
	})

	r.Add(&Op{
		Name:        "anyOf",
		Description: "report whether any element is truthy",
		Params:      []primitive.KindEnum{arr},
		Required:    1,
		Func: func(args []node.Value) (node.Value, error) {
			return node.Bool(seq.AnyOf(args[0].Elems())), nil
		},
	})

	r.Add(&Op{
		Name:        "tupleToNestedObject",
		Description: "nest VALUE under each key of an array of string keys",
		Params:      []primitive.KindEnum{arr, anyKind},
		Required:    2,
		Func: func(args []node.Value) (node.Value, error) {
			return nested.Build(args[0].Elems(), args[1])
		},
	})
}

func unary(name, desc string, fn func(string) string) *Op {
	return &Op{
		Name:        name,
		Description: desc,
		Params:      []primitive.KindEnum{str},
		Required:    1,
		Func: func(args []node.Value) (node.Value, error) {
			s, _ := args[0].AsString()
			return node.String(fn(s)), nil
		},
	}
}

func ternary(name, desc string, fn func(s, from, to string) string) *Op {
	return &Op{
		Name:        name,
		Description: desc,
		Params:      []primitive.KindEnum{str, str, str},
		Required:    3,
		Func: func(args []node.Value) (node.Value, error) {
			s, _ := args[0].AsString()
			from, _ := args[1].AsString()
			to, _ := args[2].AsString()
			return node.String(fn(s, from, to)), nil
		},
	}
}

func intArg(v node.Value) (int, error) {
	f, _ := v.AsNumber()
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: depth must be an integer, got %s", ErrArgKind, v)
	}

	// the budget only needs to exceed any real nesting depth
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, nil
	case f < 0:
		return 0, nil
	}

	return int(f), nil
}
