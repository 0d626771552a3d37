package casing

import (
	"strings"

	"seq-rebuild/internal/common"
	"seq-rebuild/utils"
)

// KebabCase lower-cases every upper-case ASCII letter and puts a '-' in
// front of it, except when it is the very first symbol.
// Existing '-' and all other symbols are kept as they are.
//
//	KebabCase("FooBarBaz") == "foo-bar-baz"
//	KebabCase("Foo-Bar")   == "foo--bar"
//	KebabCase("ABC")       == "a-b-c"
func KebabCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)

	prefix := ""
	for s != "" {
		r, rest, _ := common.UnconsRune(s)

		if utils.IsASCIIUpper(r) {
			sb.WriteString(prefix)
			sb.WriteRune(utils.ToASCIILower(r))
		} else {
			sb.WriteString(s[:len(s)-len(rest)])
		}

		prefix = string(boundary)
		s = rest
	}

	return sb.String()
}
