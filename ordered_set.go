// Package bst file: ordered_set.go
package bst

import "iter"

// OrderedSet is the contract shared by Tree and SafeTree.
type OrderedSet[T any] interface {
	// Mutation
	Insert(value T) error
	Delete(value T) error
	Reset()

	// Queries
	Contains(value T) (bool, error)
	Len() int
	Height() int

	// Traversal
	InOrder() iter.Seq[T]
	Descending() iter.Seq[T]
	Range(greaterOrEqual, lessThan T) iter.Seq[T]
	AscendGreaterOrEqual(pivot T) iter.Seq[T]
	DescendLessOrEqual(pivot T) iter.Seq[T]
}

var (
	_ OrderedSet[int] = (*Tree[int])(nil)
	_ OrderedSet[int] = (*SafeTree[int])(nil)
)
