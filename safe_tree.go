// Package bst file: safe_tree.go
package bst

import (
	"cmp"
	"iter"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// SafeTree guards a Tree with a read/write lock. Mutations take the write
// lock and queries the read lock. Nodes never leave the lock: queries
// return values, and traversals iterate over a snapshot.
type SafeTree[T any] struct {
	mu sync.RWMutex
	t  *Tree[T]
}

func NewSafeTree[T cmp.Ordered](opts ...Option) *SafeTree[T] {
	return &SafeTree[T]{t: New[T](opts...)}
}

func NewSafeTreeFunc[T any](compare CompareFunc[T], opts ...Option) *SafeTree[T] {
	return &SafeTree[T]{t: NewFunc(compare, opts...)}
}

func NewSafeDynamic(opts ...Option) *SafeTree[any] {
	return &SafeTree[any]{t: NewDynamic(opts...)}
}

// --- Mutation ---
func (s *SafeTree[T]) Insert(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Insert(value)
}

func (s *SafeTree[T]) Delete(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Delete(value)
}

func (s *SafeTree[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.Reset()
}

// With runs fn against the underlying tree while holding the write lock.
// fn must not retain nodes after it returns.
func (s *SafeTree[T]) With(fn func(t *Tree[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.t)
}

// --- Queries ---
func (s *SafeTree[T]) Search(value T) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, err := s.t.Search(value)
	if err != nil || n == nil {
		var zero T
		return zero, false, err
	}
	return n.value, true, nil
}

func (s *SafeTree[T]) Contains(value T) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Contains(value)
}

func (s *SafeTree[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Len()
}

func (s *SafeTree[T]) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Height()
}

func (s *SafeTree[T]) LeafValues() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nodeValues(s.t.LeafNodes())
}

func (s *SafeTree[T]) FullValues() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nodeValues(s.t.FullNodes())
}

func nodeValues[T any](nodes []*Node[T]) []T {
	return lo.Map(nodes, func(n *Node[T], _ int) T {
		return n.value
	})
}

// --- Min/Max ---
func (s *SafeTree[T]) Min() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nodeValue(s.t.Min())
}

func (s *SafeTree[T]) Max() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nodeValue(s.t.Max())
}

func nodeValue[T any](n *Node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// --- Traversal ---
func (s *SafeTree[T]) snapshot(seq func(t *Tree[T]) iter.Seq[T]) iter.Seq[T] {
	s.mu.RLock()
	values := slices.Collect(seq(s.t))
	s.mu.RUnlock()
	return slices.Values(values)
}

func (s *SafeTree[T]) InOrder() iter.Seq[T] {
	return s.snapshot((*Tree[T]).InOrder)
}

func (s *SafeTree[T]) Descending() iter.Seq[T] {
	return s.snapshot((*Tree[T]).Descending)
}

func (s *SafeTree[T]) Range(greaterOrEqual, lessThan T) iter.Seq[T] {
	return s.snapshot(func(t *Tree[T]) iter.Seq[T] {
		return t.Range(greaterOrEqual, lessThan)
	})
}

func (s *SafeTree[T]) AscendGreaterOrEqual(pivot T) iter.Seq[T] {
	return s.snapshot(func(t *Tree[T]) iter.Seq[T] {
		return t.AscendGreaterOrEqual(pivot)
	})
}

func (s *SafeTree[T]) DescendLessOrEqual(pivot T) iter.Seq[T] {
	return s.snapshot(func(t *Tree[T]) iter.Seq[T] {
		return t.DescendLessOrEqual(pivot)
	})
}

func (s *SafeTree[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.Values()
}

func (s *SafeTree[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t.String()
}
