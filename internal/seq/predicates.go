package seq

import (
	"seq-rebuild/node"
	"seq-rebuild/primitive"
	"seq-rebuild/utils"
)

// Includes reports whether some element of s is exactly u, as defined by
// node.Equal. Literals never match their category: false is not included in
// [boolean] and boolean is not included in [true, false].
func Includes(s []node.Value, u node.Value) bool {
	for {
		head, tail, ok := utils.Uncons(s)
		if !ok {
			return false
		}
		if node.Equal(head, u) {
			return true
		}
		s = tail
	}
}

// AnyOf reports whether at least one element of s is truthy.
// An empty sequence has no truthy element.
func AnyOf(s []node.Value) bool {
	for _, v := range s {
		if Truthy(v) {
			return true
		}
	}

	return false
}

// Truthy reports whether v is outside the falsy set {0, "", [], false, {}}.
// A record with at least one field is truthy, as are null, undefined and
// every category.
func Truthy(v node.Value) bool {
	switch v.Kind() {
	case primitive.KindNumber:
		n, _ := v.AsNumber()
		return n != 0
	case primitive.KindString:
		s, _ := v.AsString()
		return s != ""
	case primitive.KindBool:
		b, _ := v.AsBool()
		return b
	case primitive.KindArray, primitive.KindRecord:
		return v.Len() > 0
	default:
		return v.IsValid()
	}
}
