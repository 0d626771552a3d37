package nested

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seq-rebuild/node"
	"seq-rebuild/primitive"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		keys     []any
		leaf     node.Value
		expected string
	}{
		{"single", []any{"a"}, node.Category(primitive.KindText), "{a: string}"},
		{"pair", []any{"a", "b"}, node.Category(primitive.KindNumeric), "{a: {b: number}}"},
		{"triple", []any{"a", "b", "c"}, node.Category(primitive.KindBoolean), "{a: {b: {c: boolean}}}"},
		{"empty keys", []any{}, node.Category(primitive.KindBoolean), "boolean"},
		{"array leaf", []any{"x"}, node.MustOf([]any{1, 2}), "{x: [1, 2]}"},
		{"empty key name", []any{""}, node.Int(1), "{: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(node.Values(tt.keys...), tt.leaf)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestBuild_DepthEqualsKeyCount(t *testing.T) {
	keys := []string{"k1", "k2", "k3", "k4", "k5"}
	got, err := Build(node.Values("k1", "k2", "k3", "k4", "k5"), node.Null())
	require.NoError(t, err)

	depth := 0
	for got.Kind() == primitive.KindRecord {
		require.Equal(t, 1, got.Len())
		field := got.Fields()[0]
		assert.Equal(t, keys[depth], field.Key)
		got = field.Value
		depth++
	}

	assert.Equal(t, len(keys), depth)
	assert.Equal(t, primitive.KindNull, got.Kind())
}

func TestBuild_RejectsNonKeys(t *testing.T) {
	for _, keys := range [][]node.Value{
		node.Values(1),
		node.Values("a", true),
		node.Values("a", "b", []any{"c"}),
		{node.String("a"), node.Category(primitive.KindText)},
	} {
		_, err := Build(keys, node.Int(1))
		require.Error(t, err, node.Array(keys...).String())
		assert.ErrorIs(t, err, node.ErrInvalidValue)
	}
}

func TestBuild_RejectsInvalidLeaf(t *testing.T) {
	_, err := Build(node.Values("a"), node.Value{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaf")
}

func TestBuildStrings(t *testing.T) {
	got := BuildStrings([]string{"a", "b"}, node.String("v"))
	want, err := Build(node.Values("a", "b"), node.String("v"))
	require.NoError(t, err)
	assert.True(t, node.Equal(want, got))

	assert.True(t, node.Equal(node.Int(3), BuildStrings(nil, node.Int(3))))
}
