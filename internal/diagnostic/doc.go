// Package diagnostic provides structured findings produced while validating
// literal data before an operation runs.
//
// Key capabilities:
//   - Error findings that reject a whole input with a path to the offending element
//   - Warnings for inputs that are accepted but probably not what the caller meant
//   - Aggregation of all findings into a single error value
package diagnostic
