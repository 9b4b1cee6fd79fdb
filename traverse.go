// Package bst file: traverse.go
package bst

import (
	"iter"
	"slices"
)

// InOrder yields the values in ascending order. The sequence can be ranged
// over any number of times; each pass walks the tree again. The tree must
// not be modified during iteration.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		ascend(t.root, func(T) bool { return true }, yield)
	}
}

// Descending yields the values in descending order.
func (t *Tree[T]) Descending() iter.Seq[T] {
	return func(yield func(T) bool) {
		descend(t.root, func(T) bool { return true }, yield)
	}
}

// Range yields the values in [greaterOrEqual, lessThan) in ascending order.
// Bounds of a type other than the tree's element type yield nothing.
func (t *Tree[T]) Range(greaterOrEqual, lessThan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.checkType(greaterOrEqual) != nil || t.checkType(lessThan) != nil {
			return
		}
		ascend(t.root,
			func(v T) bool { return t.compare(v, greaterOrEqual) >= 0 },
			func(v T) bool {
				if t.compare(v, lessThan) >= 0 {
					return false
				}
				return yield(v)
			})
	}
}

// AscendGreaterOrEqual yields the values >= pivot in ascending order.
func (t *Tree[T]) AscendGreaterOrEqual(pivot T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.checkType(pivot) != nil {
			return
		}
		ascend(t.root, func(v T) bool { return t.compare(v, pivot) >= 0 }, yield)
	}
}

// DescendLessOrEqual yields the values <= pivot in descending order.
func (t *Tree[T]) DescendLessOrEqual(pivot T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.checkType(pivot) != nil {
			return
		}
		descend(t.root, func(v T) bool { return t.compare(v, pivot) <= 0 }, yield)
	}
}

// Values returns the values in ascending order.
func (t *Tree[T]) Values() []T {
	return slices.Collect(t.InOrder())
}

// ascend walks the subtree in order, skipping every node for which
// inBound is false. inBound must be monotone: once true for a value it is
// true for every larger value.
func ascend[T any](root *Node[T], inBound func(T) bool, yield func(T) bool) {
	var stack []*Node[T]
	pushLeft := func(n *Node[T]) {
		for n != nil {
			if inBound(n.value) {
				stack = append(stack, n)
				n = n.left
			} else {
				n = n.right
			}
		}
	}

	pushLeft(root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.value) {
			return
		}
		pushLeft(n.right)
	}
}

// descend is the mirror of ascend: inBound must hold for every value
// smaller than one it holds for.
func descend[T any](root *Node[T], inBound func(T) bool, yield func(T) bool) {
	var stack []*Node[T]
	pushRight := func(n *Node[T]) {
		for n != nil {
			if inBound(n.value) {
				stack = append(stack, n)
				n = n.right
			} else {
				n = n.left
			}
		}
	}

	pushRight(root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.value) {
			return
		}
		pushRight(n.left)
	}
}
