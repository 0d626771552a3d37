package node

import (
	"fmt"

	"seq-rebuild/internal/diagnostic"
)

// DefaultMaxNesting bounds how deeply arrays and records may nest before
// validation rejects an input. Operations that descend into nested arrays
// recurse at most this deep.
const DefaultMaxNesting = 512

// Validate checks that every element of seq, recursively, carries a valid
// kind, that records have no duplicate keys and that nesting stays within
// maxNesting levels (DefaultMaxNesting when maxNesting <= 0).
// All problems are collected and returned as one error wrapping ErrInvalidValue.
func Validate(seq []Value, maxNesting int) error {
	diags := Inspect(seq, maxNesting, "")

	return asError(&diags)
}

// Inspect runs the checks of Validate and returns every finding instead of an
// error. Paths start with prefix, e.g. "cases[0].args[1][2]".
func Inspect(seq []Value, maxNesting int, prefix string) diagnostic.Diagnostics {
	if maxNesting <= 0 {
		maxNesting = DefaultMaxNesting
	}

	var diags diagnostic.Diagnostics
	for i, v := range seq {
		validate(v, fmt.Sprintf("%s[%d]", prefix, i), 1, maxNesting, &diags)
	}

	return diags
}

// ValidateKeys checks that every element of keys is a string literal,
// the only kind allowed to name a record field.
func ValidateKeys(keys []Value) error {
	var diags diagnostic.Diagnostics
	for i, k := range keys {
		if !k.kind.IsKey() {
			diags.AddError(diagnostic.CodeNonKey,
				fmt.Sprintf("key must be a string literal, got %s", k.kind), fmt.Sprintf("[%d]", i))
		}
	}

	return asError(&diags)
}

func validate(v Value, path string, level, maxNesting int, diags *diagnostic.Diagnostics) {
	if !v.IsValid() {
		diags.AddError(diagnostic.CodeInvalidKind, fmt.Sprintf("unknown value kind %s", v.kind), path)
		return
	}

	if !v.kind.IsContainer() {
		return
	}

	if level > maxNesting {
		diags.AddError(diagnostic.CodeTooDeep, fmt.Sprintf("nesting exceeds %d levels", maxNesting), path)
		return
	}

	for i, e := range v.elems {
		validate(e, fmt.Sprintf("%s[%d]", path, i), level+1, maxNesting, diags)
	}

	seen := make(map[string]struct{}, len(v.fields))
	for _, f := range v.fields {
		if _, dup := seen[f.Key]; dup {
			diags.AddError(diagnostic.CodeDuplicateKey, fmt.Sprintf("duplicate key %q", f.Key), path)
		}
		seen[f.Key] = struct{}{}
		validate(f.Value, path+"."+f.Key, level+1, maxNesting, diags)
	}
}

func asError(diags *diagnostic.Diagnostics) error {
	if err := diags.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return nil
}
