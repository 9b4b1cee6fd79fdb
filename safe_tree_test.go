package bst

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeTreeConcurrentInsert(t *testing.T) {
	tree := NewSafeTree[int]()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < 800; i += 8 {
				assert.NoError(t, tree.Insert(i))
				_, _ = tree.Contains(i)
				_ = tree.Height()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 800, tree.Len())
	values := slices.Collect(tree.InOrder())
	assert.Len(t, values, 800)
	assert.True(t, slices.IsSorted(values))
}

func TestSafeTreeQueries(t *testing.T) {
	tree := NewSafeTree[int]()

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	for _, v := range []int{5, 3, 8, 1, 4} {
		require.NoError(t, tree.Insert(v))
	}

	v, found, err := tree.Search(4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, v)

	_, found, err = tree.Search(6)
	require.NoError(t, err)
	assert.False(t, found)

	minV, _ := tree.Min()
	maxV, _ := tree.Max()
	assert.Equal(t, 1, minV)
	assert.Equal(t, 8, maxV)
	assert.Equal(t, []int{1, 4, 8}, tree.LeafValues())
	assert.Equal(t, []int{5, 3}, tree.FullValues())
	assert.Equal(t, "[1, 3, 4, 5, 8]", tree.String())
	assert.Equal(t, []int{8, 5, 4, 3, 1}, slices.Collect(tree.Descending()))
	assert.Equal(t, []int{3, 4}, slices.Collect(tree.Range(2, 5)))
	assert.Equal(t, []int{5, 8}, slices.Collect(tree.AscendGreaterOrEqual(5)))
	assert.Equal(t, []int{3, 1}, slices.Collect(tree.DescendLessOrEqual(3)))

	require.NoError(t, tree.Delete(3))
	assert.Equal(t, []int{1, 4, 5, 8}, tree.Values())

	tree.With(func(t *Tree[int]) {
		_ = t.Insert(2)
	})
	assert.Equal(t, 5, tree.Len())

	tree.Reset()
	assert.Zero(t, tree.Len())
	assert.Zero(t, tree.Height())
}

func TestSafeTreeSnapshotAllowsMutation(t *testing.T) {
	tree := NewSafeTree[int]()
	for _, v := range []int{2, 1, 3} {
		require.NoError(t, tree.Insert(v))
	}

	for v := range tree.InOrder() {
		require.NoError(t, tree.Insert(v+10))
	}
	assert.Equal(t, []int{1, 2, 3, 11, 12, 13}, tree.Values())
}

func TestSafeDynamicTypeMismatch(t *testing.T) {
	tree := NewSafeDynamic()
	require.NoError(t, tree.Insert("b"))

	assert.ErrorIs(t, tree.Insert(1), ErrTypeMismatch)
	_, _, err := tree.Search(1)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, 1, tree.Len())
}

func TestSafeTreeFunc(t *testing.T) {
	tree := NewSafeTreeFunc(func(a, b int) int { return b - a })
	for _, v := range []int{1, 3, 2} {
		require.NoError(t, tree.Insert(v))
	}
	assert.Equal(t, []int{3, 2, 1}, tree.Values())
}
