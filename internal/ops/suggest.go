package ops

import (
	"sort"
	"strings"
)

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 3

// Suggest returns registered names close to name, nearest first.
// Comparison ignores case, so "camelcase" suggests "camelCase".
func (r *Registry) Suggest(name string) []string {
	type scored struct {
		name string
		dist int
	}

	target := strings.ToLower(name)

	var found []scored
	for _, candidate := range r.Names() {
		d := levenshtein(target, strings.ToLower(candidate))
		if d <= maxSuggestDistance && d < len(candidate) {
			found = append(found, scored{candidate, d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}

	return out
}

// levenshtein computes the edit distance between two strings.
// Only two rows of the matrix are kept.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
