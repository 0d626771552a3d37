package node

import "seq-rebuild/primitive"

// Equal reports whether a and b describe exactly the same literal data.
//
// Kinds must match exactly: the bool literal false never equals the boolean
// category, in either direction, and the number 1 never equals the string "1".
// Arrays compare element-wise in order. Records compare as multisets of
// fields: field order does not matter, and each field of one record is paired
// with a distinct field of the other, so duplicate keys must match in number.
// Numbers compare with ==, so NaN equals nothing.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case primitive.KindBool:
		return a.b == b.b
	case primitive.KindNumber:
		return a.num == b.num
	case primitive.KindString:
		return a.str == b.str
	case primitive.KindArray:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case primitive.KindRecord:
		return equalFields(a.fields, b.fields)
	default:
		// null, undefined and categories carry no payload
		return a.kind.IsValid()
	}
}

// Equal is the method form of the package-level Equal.
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

// equalFields pairs every field of a with an unused field of b carrying the
// same key and an equal value.
func equalFields(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))
	for _, fa := range a {
		matched := false
		for j, fb := range b {
			if used[j] || fa.Key != fb.Key || !Equal(fa.Value, fb.Value) {
				continue
			}
			used[j] = true
			matched = true
			break
		}
		if !matched {
			return false
		}
	}

	return true
}
