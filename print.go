// Package bst file: print.go
package bst

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String implements fmt.Stringer, listing the values in ascending order.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true
	for v := range t.InOrder() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", v))
		first = false
	}
	sb.WriteString("]")
	return sb.String()
}

// Pretty renders the tree shape with box-drawing characters. Children are
// prefixed with L: or R: so a lone child's side is visible.
func (t *Tree[T]) Pretty() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}

	type frame struct {
		n      *Node[T]
		branch treeprint.Tree
	}

	out := treeprint.NewWithRoot(fmt.Sprintf("%v", t.root.value))
	stack := []frame{{t.root, out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range []struct {
			side  string
			child *Node[T]
		}{{"L", f.n.left}, {"R", f.n.right}} {
			if c.child == nil {
				continue
			}
			label := fmt.Sprintf("%s: %v", c.side, c.child.value)
			if c.child.IsLeaf() {
				f.branch.AddNode(label)
				continue
			}
			stack = append(stack, frame{c.child, f.branch.AddBranch(label)})
		}
	}
	return out.String()
}
