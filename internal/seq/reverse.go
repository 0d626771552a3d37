package seq

import "seq-rebuild/utils"

// Reverse returns a new slice with the elements of s in inverse order.
// Both ends are peeled off together on every step; an empty or single
// element input comes back as an equal copy.
func Reverse[S ~[]E, E any](s S) S {
	out := make(S, len(s))

	lo, hi := 0, len(s)-1
	rest := s
	for {
		first, inner, last, ok := utils.PeelEnds(rest)
		if !ok {
			break
		}
		out[lo], out[hi] = last, first
		lo, hi = lo+1, hi-1
		rest = inner
	}

	if len(rest) == 1 {
		out[lo] = rest[0]
	}

	return out
}
