package suite

import (
	"fmt"
	"strings"

	"seq-rebuild/internal/diagnostic"
	"seq-rebuild/internal/ops"
	"seq-rebuild/node"
)

// Diagnostic codes reported by Validate.
const (
	CodeUnknownOp     = "unknown-op"
	CodeDuplicateName = "duplicate-name"
	CodeNoExpectation = "no-expectation"
)

// Validate checks a suite against a registry before it runs. Malformed
// argument values are errors, everything else is a warning or an info.
// Findings never stop a run: the runner still evaluates every case and
// reports each failure on its own.
func Validate(s *Suite, registry *ops.Registry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		path := fmt.Sprintf("cases[%d]", i)

		if _, dup := seen[c.Name]; dup {
			diags.AddWarning(CodeDuplicateName, fmt.Sprintf("case name %q is used more than once", c.Name), path)
		}
		seen[c.Name] = struct{}{}

		if !registry.Has(c.Op) {
			msg := fmt.Sprintf("operation %q is not registered", c.Op)
			if hints := registry.Suggest(c.Op); len(hints) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(hints, " or "))
			}
			diags.AddWarning(CodeUnknownOp, msg, path)
		}

		args := path + ".args"
		diags.Merge(node.Inspect(c.Args, 0, args))
		diags.Merge(registry.Lint(c.Op, c.Args, args))

		if !c.HasWant && !c.WantErr {
			diags.AddInfo(CodeNoExpectation, fmt.Sprintf("case %q only checks that the call succeeds", c.Name), path)
		}
	}

	return diags
}
