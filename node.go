// Package bst file: node.go
package bst

// Node is a vertex of a Tree. Nodes are owned by their tree; callers may
// read and navigate them but never relink them.
type Node[T any] struct {
	value  T
	parent *Node[T] // back reference only, never followed for ownership
	left   *Node[T]
	right  *Node[T]
}

func newNode[T any](value T, parent *Node[T]) *Node[T] {
	return &Node[T]{value: value, parent: parent}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsFull reports whether n has both children.
func (n *Node[T]) IsFull() bool {
	return n.left != nil && n.right != nil
}

// Descendants returns every node below n, excluding n, in pre-order with
// the left subtree before the right. Each call walks the subtree again.
func (n *Node[T]) Descendants() []*Node[T] {
	var result []*Node[T]
	preOrder(n, func(m *Node[T]) {
		if m != n {
			result = append(result, m)
		}
	})
	return result
}

// DescendantCount returns len(n.Descendants()).
func (n *Node[T]) DescendantCount() int {
	return len(n.Descendants())
}

// preOrder visits root and its subtree node-left-right using an explicit
// stack so that degenerate trees cannot exhaust the goroutine stack.
func preOrder[T any](root *Node[T], visit func(*Node[T])) {
	if root == nil {
		return
	}
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}
