// Package bst file: tree.go
package bst

import (
	"cmp"
	"reflect"

	"github.com/rs/zerolog"
)

// Tree is an unbalanced binary search tree holding distinct values of a
// single element type. The element type is fixed by the first insertion
// and stays fixed until Reset, even if every node is deleted.
//
// A Tree is not safe for concurrent use; see SafeTree.
type Tree[T any] struct {
	root    *Node[T]
	size    int
	compare CompareFunc[T]

	// typ is the element type tag. dynamic trees additionally require it
	// to be an ordered kind.
	typ     reflect.Type
	typed   bool
	dynamic bool

	logger zerolog.Logger
}

// New creates an empty tree ordered by the natural order of T.
func New[T cmp.Ordered](opts ...Option) *Tree[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty tree ordered by compare.
func NewFunc[T any](compare CompareFunc[T], opts ...Option) *Tree[T] {
	o := buildOptions(opts)
	return &Tree[T]{
		compare: compare,
		logger:  o.logger,
	}
}

// NewDynamic creates an empty tree of interface values. The dynamic type of
// the first inserted value becomes the tree's element type; values of any
// other type are rejected with ErrTypeMismatch. Only ordered kinds
// (integers, floats, strings and named types over them) are accepted.
func NewDynamic(opts ...Option) *Tree[any] {
	t := NewFunc(compareDynamic, opts...)
	t.dynamic = true
	return t
}

// --- Type tag ---

func (t *Tree[T]) fixType(value T) error {
	typ := reflect.TypeOf(value)
	if t.dynamic && (typ == nil || !isOrderedKind(typ.Kind())) {
		t.logger.Debug().Str("got", typeName(typ)).Msg("rejected unordered value")
		return unorderedType(typ)
	}
	t.typ = typ
	t.typed = true
	t.logger.Debug().Str("type", typeName(typ)).Msg("element type fixed")
	return nil
}

func (t *Tree[T]) checkType(value T) error {
	if !t.typed {
		return nil
	}
	if got := reflect.TypeOf(value); got != t.typ {
		t.logger.Debug().Str("type", typeName(t.typ)).Str("got", typeName(got)).Msg("rejected value")
		return typeMismatch(t.typ, got)
	}
	return nil
}

// ElementType returns the fixed element type, or nil while the tree is untyped.
func (t *Tree[T]) ElementType() reflect.Type {
	return t.typ
}

// --- Mutation ---

// Insert adds value to the tree. Inserting a value already present is a
// no-op. On a typed tree, a value of another type returns ErrTypeMismatch
// and leaves the tree unchanged.
func (t *Tree[T]) Insert(value T) error {
	if !t.typed {
		if err := t.fixType(value); err != nil {
			return err
		}
	} else if err := t.checkType(value); err != nil {
		return err
	}

	if t.root == nil {
		t.root = newNode(value, nil)
		t.size++
		return nil
	}

	n := t.root
	for {
		c := t.compare(value, n.value)
		switch {
		case c < 0:
			if n.left == nil {
				n.left = newNode(value, n)
				t.size++
				return nil
			}
			n = n.left
		case c > 0:
			if n.right == nil {
				n.right = newNode(value, n)
				t.size++
				return nil
			}
			n = n.right
		default:
			return nil
		}
	}
}

// Delete removes value from the tree. Deleting a missing value is a no-op.
// A node with two children takes the value of its in-order successor and
// the successor's node is removed instead.
func (t *Tree[T]) Delete(value T) error {
	if err := t.checkType(value); err != nil {
		return err
	}
	n := t.search(value)
	if n == nil {
		return nil
	}

	switch {
	case n.left == nil:
		t.logger.Debug().Bool("leaf", n.right == nil).Msg("delete: splice right")
		t.replace(n, n.right)
	case n.right == nil:
		t.logger.Debug().Msg("delete: splice left")
		t.replace(n, n.left)
	default:
		successor := minNode(n.right)
		t.logger.Debug().Msg("delete: copy in-order successor")
		n.value = successor.value
		t.replace(successor, successor.right)
	}
	t.size--
	return nil
}

// replace puts child, which may be nil, in n's slot under n's parent and
// detaches n.
func (t *Tree[T]) replace(n, child *Node[T]) {
	switch {
	case n.parent == nil:
		t.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
	if child != nil {
		child.parent = n.parent
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// Reset discards every node and clears the element type.
func (t *Tree[T]) Reset() {
	t.root = nil
	t.size = 0
	t.typ = nil
	t.typed = false
	t.logger.Debug().Msg("tree reset")
}

// --- Search ---

func (t *Tree[T]) search(value T) *Node[T] {
	n := t.root
	for n != nil {
		c := t.compare(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Search returns the node holding value, or nil if there is none.
func (t *Tree[T]) Search(value T) (*Node[T], error) {
	if err := t.checkType(value); err != nil {
		return nil, err
	}
	return t.search(value), nil
}

// Find is an alias for Search.
func (t *Tree[T]) Find(value T) (*Node[T], error) {
	return t.Search(value)
}

// Contains reports whether value is in the tree.
func (t *Tree[T]) Contains(value T) (bool, error) {
	n, err := t.Search(value)
	if err != nil {
		return false, err
	}
	return n != nil, nil
}

// Has is an alias for Contains.
func (t *Tree[T]) Has(value T) (bool, error) {
	return t.Contains(value)
}

// --- Min/Max ---

func minNode[T any](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T any](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the node with the smallest value, or nil for an empty tree.
func (t *Tree[T]) Min() *Node[T] {
	return t.MinFrom(t.root)
}

// MinFrom returns the leftmost node of the subtree rooted at sub.
func (t *Tree[T]) MinFrom(sub *Node[T]) *Node[T] {
	if sub == nil {
		return nil
	}
	return minNode(sub)
}

// Max returns the node with the largest value, or nil for an empty tree.
func (t *Tree[T]) Max() *Node[T] {
	return t.MaxFrom(t.root)
}

// MaxFrom returns the rightmost node of the subtree rooted at sub.
func (t *Tree[T]) MaxFrom(sub *Node[T]) *Node[T] {
	if sub == nil {
		return nil
	}
	return maxNode(sub)
}

// --- Introspection ---

func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree[T]) Len() int {
	return t.size
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// FullNodes returns the nodes with two children, in pre-order.
func (t *Tree[T]) FullNodes() []*Node[T] {
	return t.collect((*Node[T]).IsFull)
}

func (t *Tree[T]) FullNodeCount() int {
	return len(t.FullNodes())
}

// LeafNodes returns the nodes with no children, in pre-order.
func (t *Tree[T]) LeafNodes() []*Node[T] {
	return t.collect((*Node[T]).IsLeaf)
}

func (t *Tree[T]) LeafNodeCount() int {
	return len(t.LeafNodes())
}

func (t *Tree[T]) collect(keep func(*Node[T]) bool) []*Node[T] {
	var result []*Node[T]
	preOrder(t.root, func(n *Node[T]) {
		if keep(n) {
			result = append(result, n)
		}
	})
	return result
}

// Height returns the number of levels: 0 for an empty tree, 1 for a root
// without children.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}
