// Package flatten splices nested arrays into their parent sequence, up to a
// caller-supplied number of levels.
package flatten

import (
	"fmt"
	"math"

	"seq-rebuild/node"
)

// DefaultDepth is the number of levels flattened by Once.
const DefaultDepth = 1

// Flattener flattens sequences of literal values. The zero value is ready to use.
type Flattener struct {
	// MaxNesting rejects inputs nested deeper than this many arrays or records.
	// Zero means node.DefaultMaxNesting.
	MaxNesting int
}

// Depth splices nested arrays of seq into the result, descending at most
// depth levels. Arrays found below that level are kept intact. Non-array
// values, records included, pass through unchanged and in order.
//
// The budget is tracked per branch: every sibling array starts from the
// budget its parent had, so [[3,4], [[[5]]]] flattened by 2 yields
// [3, 4, [5]]. A depth of 0 or less returns a copy of seq.
//
// seq is validated first; an invalid element rejects the whole call.
func (f Flattener) Depth(seq []node.Value, depth int) ([]node.Value, error) {
	if err := node.Validate(seq, f.MaxNesting); err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	depth = max(depth, 0)

	return splice(seq, 0, depth, make([]node.Value, 0, len(seq))), nil
}

// splice appends the flattening of seq to out. consumed counts how many
// levels the current branch has already descended.
func splice(seq []node.Value, consumed, depth int, out []node.Value) []node.Value {
	for _, v := range seq {
		out = spliceValue(v, consumed, depth, out)
	}

	return out
}

func spliceValue(v node.Value, consumed, depth int, out []node.Value) []node.Value {
	if v.Kind().IsScalar() || consumed == depth {
		return append(out, v)
	}

	for i := range v.Len() {
		out = spliceValue(v.Index(i), consumed+1, depth, out)
	}

	return out
}

// Depth flattens seq by depth levels with the default nesting limit.
func Depth(seq []node.Value, depth int) ([]node.Value, error) {
	return Flattener{}.Depth(seq, depth)
}

// Once flattens seq by DefaultDepth levels.
func Once(seq []node.Value) ([]node.Value, error) {
	return Depth(seq, DefaultDepth)
}

// All flattens every nested array.
func All(seq []node.Value) ([]node.Value, error) {
	return Depth(seq, math.MaxInt)
}
