// Package bst file: index.go
package bst

import "context"

// Index contract for ordered indexes over entities. Entities sharing a key
// are kept in insertion order. Iteration stops early when fn returns false
// or ctx is done.
type Index[K any, T Entity] interface {
	Insert(ctx context.Context, obj T) error
	Delete(ctx context.Context, obj T)
	Find(ctx context.Context, key K) []T
	Len() int
	Ascend(ctx context.Context, fn func(T) bool)
	Descend(ctx context.Context, fn func(T) bool)
	AscendRange(ctx context.Context, lower, upper K, fn func(T) bool)
	AscendGreaterThanOrEqual(ctx context.Context, key K, fn func(T) bool)
	DescendLessThanOrEqual(ctx context.Context, key K, fn func(T) bool)
}
