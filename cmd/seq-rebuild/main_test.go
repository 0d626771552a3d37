package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestOperationCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"trim", []string{"trim", "  foo \n"}, "foo\n"},
		{"string arg is verbatim", []string{"camelCase", "[a-b]"}, "'[aB]'\n"},
		{"replaceAll", []string{"replaceAll", "foobarfoobar", "ob", "b"}, "fobarfobar\n"},
		{"percentageParser", []string{"percentageParser", "--", "-99%"}, "['-', \"99\", '%']\n"},
		{"camelCase leading dash", []string{"camelCase", "--", "-foo"}, "Foo\n"},
		{"kebabCase dash", []string{"kebabCase", "--", "-"}, "'-'\n"},
		{"flattenDepth negative", []string{"flattenDepth", "--", "[1, [2]]", "-1"}, "[1, [2]]\n"},
		{"flattenDepth default", []string{"flattenDepth", "[1, [2, [3]]]"}, "[1, 2, [3]]\n"},
		{"flattenDepth", []string{"flattenDepth", "[1, 2, [3, 4], [[[5]]]]", "2"}, "[1, 2, 3, 4, [5]]\n"},
		{"reverse", []string{"reverse", "[a, b]"}, "[b, a]\n"},
		{"includes", []string{"includes", "[!type boolean, 2]", "false"}, "false\n"},
		{"anyOf", []string{"anyOf", "[0, '', [1]]"}, "true\n"},
		{"tupleToNestedObject", []string{"tupleToNestedObject", "[a, b]", "!type string"}, "{a: {b: !type string}}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperationCommand_Errors(t *testing.T) {
	_, err := execute(t, "trim")
	require.Error(t, err)

	_, err = execute(t, "reverse", "[1, 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverse argument 1")

	_, err = execute(t, "reverse", "{a: 1}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong argument kind")

	_, err = execute(t, "tupleToNestedObject", "[a, 1]", "x")
	require.Error(t, err)
}

func TestOperationCommand_DashOperandNeedsSeparator(t *testing.T) {
	_, err := execute(t, "percentageParser", "-99%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after --")

	got, err := execute(t, "--verbose", "percentageParser", "--", "-99%")
	require.NoError(t, err)
	assert.Equal(t, "['-', \"99\", '%']\n", got)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaultDepth: 2\nlogLevel: error\n"), 0644))

	got, err := execute(t, "--config", path, "flattenDepth", "[1, [2, [3]]]")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n", got)

	require.NoError(t, os.WriteFile(path, []byte("bogus: 1\n"), 0644))
	_, err = execute(t, "--config", path, "list")
	assert.Error(t, err)

	_, err = execute(t, "--workers", "-1", "list")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	got, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, got, "flattenDepth")
	assert.Contains(t, got, "ARRAY [NUMBER]")
	assert.Contains(t, got, "replaceAll")
	assert.Contains(t, got, "STRING STRING STRING")
}

func TestRun(t *testing.T) {
	suitePath := filepath.Join("..", "..", "internal", "suite", "testdata", "puzzles.yaml")

	got, err := execute(t, "run", "--workers", "2", suitePath)
	require.NoError(t, err)
	assert.Contains(t, got, "failed: 0")

	got, err = execute(t, "run", "--failed", suitePath)
	require.NoError(t, err)
	assert.Contains(t, got, "results: []")
}

func TestRun_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cases:
  - name: wrong
    op: reverse
    args: [[1, 2]]
    want: [1, 2]
`), 0644))

	got, err := execute(t, "run", path)
	require.ErrorIs(t, err, errSuiteFailed)
	assert.Contains(t, got, "name: wrong")
	assert.Contains(t, got, "error: result mismatch")
}
