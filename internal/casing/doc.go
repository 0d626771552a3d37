// Package casing converts between kebab-case and camelCase identifiers.
//
// Only ASCII letters change case. Every other symbol (digits, '_', non-ASCII
// letters, emoji) is copied through unchanged and, for the purpose of the
// conversion rules, counts as already upper-case in CamelCase and as
// lower-case in KebabCase.
//
// The two conversions are not inverses: KebabCase(CamelCase(s)) may differ
// from s whenever s contains repeated or trailing boundaries, or a boundary
// followed by something other than a lower-case letter.
package casing
