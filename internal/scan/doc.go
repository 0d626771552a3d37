// Package scan strips and substitutes symbols at string boundaries.
//
// Key functions:
//   - TrimLeft, TrimRight, Trim: remove leading/trailing spaces, tabs and newlines
//   - ReplaceAll: leftmost-first, non-overlapping substitution
//   - Replace: substitution of the leftmost occurrence only
//
// Every function consumes at least one symbol per step, so work is linear in
// the input and no call can loop forever. Inputs are treated as UTF-8 but
// symbols outside the whitespace set and the pattern are copied byte for byte.
package scan
