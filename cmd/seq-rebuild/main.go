// Package main provides the CLI entrypoint for seq-rebuild.
//
// seq-rebuild runs the string and sequence operations from the command line:
//   - one subcommand per operation, e.g. `seq-rebuild flattenDepth '[1, [2, [3]]]' 2`
//   - `run` evaluates YAML suite files of cases
//   - `list` prints every operation with its parameters
//
// String parameters are taken verbatim; all others are parsed as YAML values.
// Operands starting with '-' go after `--`, e.g. `seq-rebuild camelCase -- -foo`.
// Results are printed as YAML.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errSuiteFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
