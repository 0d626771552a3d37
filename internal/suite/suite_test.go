package suite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"seq-rebuild/internal/diagnostic"
	"seq-rebuild/internal/ops"
	"seq-rebuild/node"
	"seq-rebuild/primitive"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newRunner(workers int) *Runner {
	return &Runner{Registry: ops.Default(ops.Options{}), Workers: workers}
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
cases:
  - op: includes
    args: [[null], null]
    want: true
  - name: no-want
    op: reverse
    args: [[]]
  - name: errs
    op: trim
    wantErr: true
`))
	require.NoError(t, err)

	assert.Equal(t, "1", s.Version)
	require.Len(t, s.Cases, 3)

	first := s.Cases[0]
	assert.Equal(t, "includes#1", first.Name)
	require.Len(t, first.Args, 2)
	assert.Equal(t, primitive.KindNull, first.Args[1].Kind(), "null args are kept")
	assert.True(t, first.HasWant)
	assert.True(t, node.Equal(node.Bool(true), first.Want))

	assert.False(t, s.Cases[1].HasWant)
	assert.Empty(t, s.Cases[2].Args)
	assert.True(t, s.Cases[2].WantErr)
}

func TestParse_NullWant(t *testing.T) {
	s, err := Parse([]byte("cases:\n  - op: reverse\n    args: [[]]\n    want: null\n"))
	require.NoError(t, err)
	require.Len(t, s.Cases, 1)
	assert.True(t, s.Cases[0].HasWant)
	assert.Equal(t, primitive.KindNull, s.Cases[0].Want.Kind())
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{
		"cases:\n  - op: trim\n    args: foo\n",
		"cases:\n  - op: trim\n    args: [!type object]\n",
		"cases:\n  - op: trim\n    want: {a: 1, a: 2}\n",
		"cases: [",
	} {
		_, err := Parse([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	orig, err := LoadFile(filepath.Join("testdata", "puzzles.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(orig, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, back.Cases, len(orig.Cases))

	for i := range orig.Cases {
		want, got := orig.Cases[i], back.Cases[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Op, got.Op)
		assert.Equal(t, want.HasWant, got.HasWant, want.Name)
		assert.Equal(t, want.WantErr, got.WantErr, want.Name)
		assert.True(t, node.Equal(node.Array(want.Args...), node.Array(got.Args...)), want.Name)
		if want.HasWant {
			assert.True(t, node.Equal(want.Want, got.Want), want.Name)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Testdata(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "puzzles.yaml"))
	require.NoError(t, err)

	report, err := newRunner(4).Run(context.Background(), s)
	require.NoError(t, err)

	for _, res := range report.Results {
		assert.True(t, res.Passed, "%s: %s", res.Name, res.Error)
	}
	assert.Equal(t, len(s.Cases), report.Passed)
	assert.True(t, report.OK())

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
}

func TestRun_Failures(t *testing.T) {
	s := &Suite{Cases: []Case{
		{Name: "mismatch", Op: "reverse", Args: node.Values([]any{1, 2}), Want: node.MustOf([]any{1, 2}), HasWant: true},
		{Name: "unexpected-success", Op: "trim", Args: node.Values(" a "), WantErr: true},
		{Name: "unknown", Op: "nope"},
		{Name: "arity", Op: "trim"},
		{Name: "ok", Op: "kebabCase", Args: node.Values("FooBar"), Want: node.String("foo-bar"), HasWant: true},
	}}

	core, logs := observer.New(zap.WarnLevel)
	r := newRunner(2)
	r.Logger = zap.New(core)

	report, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 4, report.Failed)
	assert.False(t, report.OK())

	names := make([]string, len(report.Results))
	for i, res := range report.Results {
		names[i] = res.Name
	}
	assert.Equal(t, []string{"mismatch", "unexpected-success", "unknown", "arity", "ok"}, names, "results keep case order")

	assert.Equal(t, "result mismatch", report.Results[0].Error)
	require.NotNil(t, report.Results[0].Got)
	assert.Equal(t, "[2, 1]", report.Results[0].Got.String())
	assert.Equal(t, "expected an error", report.Results[1].Error)
	assert.Contains(t, report.Results[2].Error, ops.ErrUnknownOp.Error())
	assert.Nil(t, report.Results[2].Got)

	failed := logs.FilterMessage("case failed")
	assert.Equal(t, 4, failed.Len())
	for _, entry := range failed.All() {
		assert.Equal(t, report.RunID, entry.ContextMap()["run"])
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Suite{Cases: []Case{{Name: "a", Op: "reverse", Args: node.Values([]any{})}}}

	_, err := newRunner(1).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	report, err := newRunner(0).Run(context.Background(), &Suite{})
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.True(t, report.OK())
}

func TestValidate(t *testing.T) {
	s := &Suite{Cases: []Case{
		{Name: "a", Op: "trim", WantErr: true},
		{Name: "a", Op: "nope", HasWant: true},
		{Name: "b", Op: "reverse"},
	}}

	diags := Validate(s, ops.Default(ops.Options{}))

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, CodeDuplicateName, diags.Warnings[0].Code)
	assert.Equal(t, CodeUnknownOp, diags.Warnings[1].Code)
	assert.Equal(t, "cases[1]", diags.Warnings[1].Path)
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, CodeNoExpectation, diags.Infos[0].Code)
}

func TestValidate_Arguments(t *testing.T) {
	s, err := Parse([]byte(`
cases:
  - name: negative-depth
    op: flattenDepth
    args: [[1, [2]], -1]
    want: [1, [2]]
  - name: duplicate-key
    op: includes
    args: [[{a: 1}], !undefined ""]
    want: false
`))
	require.NoError(t, err)

	// duplicate keys are rejected while parsing, so build that one by hand
	s.Cases[1].Args[0] = node.Array(node.Record(node.F("a", node.Int(1)), node.F("a", node.Int(2))))

	diags := Validate(s, ops.Default(ops.Options{}))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeNegative, diags.Warnings[0].Code)
	assert.Equal(t, "cases[0].args[1]", diags.Warnings[0].Path)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateKey, diags.Errors[0].Code)
	assert.Equal(t, "cases[1].args[0][0]", diags.Errors[0].Path)

	report, err := newRunner(1).Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, report.Results[0].Passed, report.Results[0].Error)
	assert.False(t, report.Results[1].Passed)
	assert.Contains(t, report.Results[1].Error, "duplicate-key")
}
