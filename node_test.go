package bst

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeValuesOf[T any](nodes []*Node[T]) []T {
	return lo.Map(nodes, func(n *Node[T], _ int) T { return n.Value() })
}

func newIntTree(t *testing.T, values ...int) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for _, v := range values {
		require.NoError(t, tree.Insert(v))
	}
	return tree
}

func TestNodePredicates(t *testing.T) {
	tree := newIntTree(t, 5, 3, 8, 1, 4, 9)

	tcs := []struct {
		value int
		leaf  bool
		full  bool
	}{
		{5, false, true},
		{3, false, true},
		{8, false, false},
		{1, true, false},
		{4, true, false},
		{9, true, false},
	}

	for _, tc := range tcs {
		n, err := tree.Search(tc.value)
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, tc.leaf, n.IsLeaf(), "IsLeaf(%d)", tc.value)
		assert.Equal(t, tc.full, n.IsFull(), "IsFull(%d)", tc.value)
	}
}

func TestNodeDescendants(t *testing.T) {
	tree := newIntTree(t, 5, 3, 8, 1, 4, 7, 9)

	tcs := []struct {
		name   string
		value  int
		expect []int
	}{
		{"root lists whole tree pre-order", 5, []int{3, 1, 4, 8, 7, 9}},
		{"inner node", 8, []int{7, 9}},
		{"leaf has none", 1, []int{}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tree.Search(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, nodeValuesOf(n.Descendants()))
			assert.Equal(t, len(tc.expect), n.DescendantCount())
		})
	}
}

func TestNodeLinks(t *testing.T) {
	tree := newIntTree(t, 5, 3, 8)

	root := tree.Root()
	require.NotNil(t, root)
	assert.Nil(t, root.Parent())
	assert.Equal(t, 3, root.Left().Value())
	assert.Equal(t, 8, root.Right().Value())
	assert.Same(t, root, root.Left().Parent())
	assert.Same(t, root, root.Right().Parent())
}
