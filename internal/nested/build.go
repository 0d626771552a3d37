// Package nested builds right-nested single-key records from a key path.
package nested

import (
	"fmt"

	"seq-rebuild/node"
	"seq-rebuild/utils"
)

// Build wraps leaf in one single-field record per key, outermost key first:
//
//	Build([a, b, c], leaf) == {a: {b: {c: leaf}}}
//
// An empty key sequence returns leaf itself. Every key must be a string
// literal; any other element rejects the whole construction before anything
// is built, as does an invalid leaf.
func Build(keys []node.Value, leaf node.Value) (node.Value, error) {
	if err := node.ValidateKeys(keys); err != nil {
		return node.Value{}, fmt.Errorf("nested: %w", err)
	}

	if err := node.Validate([]node.Value{leaf}, 0); err != nil {
		return node.Value{}, fmt.Errorf("nested: leaf: %w", err)
	}

	out := leaf
	for {
		init, last, ok := utils.Unsnoc(keys)
		if !ok {
			return out, nil
		}
		key, _ := last.AsString()
		out = node.Record(node.F(key, out))
		keys = init
	}
}

// BuildStrings is Build for keys that are already Go strings and therefore
// cannot be rejected.
func BuildStrings(keys []string, leaf node.Value) node.Value {
	out := leaf
	for i := len(keys) - 1; i >= 0; i-- {
		out = node.Record(node.F(keys[i], out))
	}

	return out
}
