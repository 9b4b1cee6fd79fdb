package bst

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tcs := []struct {
		name   string
		values []int
		expect string
	}{
		{"empty", nil, "[]"},
		{"single", []int{7}, "[7]"},
		{"sorted output", []int{5, 3, 8, 1, 4}, "[1, 3, 4, 5, 8]"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, newIntTree(t, tc.values...).String())
		})
	}
}

func TestPretty(t *testing.T) {
	tree := newIntTree(t, 5, 3, 8, 1, 4, 9)
	out := tree.Pretty()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "5", lines[0])
	for _, label := range []string{"L: 3", "R: 8", "L: 1", "R: 4", "R: 9"} {
		assert.Contains(t, out, label)
	}
	assert.Less(t, strings.Index(out, "L: 3"), strings.Index(out, "R: 8"))

	assert.Contains(t, New[int]().Pretty(), "(empty)")
}

func TestLoggerReceivesDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	tree := NewDynamic(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	require.NoError(t, tree.Insert(2))
	require.NoError(t, tree.Insert(1))
	require.NoError(t, tree.Insert(3))
	assert.ErrorIs(t, tree.Insert("x"), ErrTypeMismatch)
	require.NoError(t, tree.Delete(2))
	tree.Reset()

	out := buf.String()
	assert.Contains(t, out, "element type fixed")
	assert.Contains(t, out, "rejected value")
	assert.Contains(t, out, "delete: copy in-order successor")
	assert.Contains(t, out, "tree reset")
}
