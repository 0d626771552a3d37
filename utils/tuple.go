package utils

// Uncons splits s into its first element and the remaining tail.
// ok is false for an empty slice. The tail aliases s.
func Uncons[Slice ~[]T, T any](s Slice) (head T, tail Slice, ok bool) {
	if len(s) == 0 {
		return
	}

	return s[0], s[1:], true
}

// Unsnoc splits s into everything but the last element and the last element.
// ok is false for an empty slice. The init aliases s.
func Unsnoc[Slice ~[]T, T any](s Slice) (init Slice, last T, ok bool) {
	if len(s) == 0 {
		return
	}

	return s[:len(s)-1], s[len(s)-1], true
}

// PeelEnds splits s into its first element, the inner remainder and its last element.
// ok is false when s has fewer than two elements; a two-element slice yields an empty inner.
func PeelEnds[Slice ~[]T, T any](s Slice) (first T, inner Slice, last T, ok bool) {
	switch len(s) {
	case 0, 1:
		return
	default:
		return s[0], s[1 : len(s)-1], s[len(s)-1], true
	}
}
