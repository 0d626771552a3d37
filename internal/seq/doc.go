// Package seq provides whole-sequence transforms and predicates:
// Reverse, Includes and AnyOf.
package seq
