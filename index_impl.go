// Package bst file: index_impl.go

package bst

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// item wraps a key and the entities filed under it. bucket is a pointer so
// the tree can hand back the item and the index can update it in place.
type item[K any, T Entity] struct {
	key    K
	bucket *bucket[T]
}

type bucket[T Entity] struct {
	entries []T
}

func (b *bucket[T]) put(obj T) {
	id := obj.GetBase().ID
	for i, e := range b.entries {
		if e.GetBase().ID == id {
			b.entries[i] = obj
			return
		}
	}
	b.entries = append(b.entries, obj)
}

func (b *bucket[T]) remove(id uuid.UUID) {
	b.entries = lo.Reject(b.entries, func(e T, _ int) bool {
		return e.GetBase().ID == id
	})
}

// TreeIndex is an Index backed by a Tree of keys.
// K is the key type, T is the entity type.
type TreeIndex[K any, T Entity] struct {
	tree    *Tree[item[K, T]]
	keyFunc func(T) K
	unique  bool
	logger  zerolog.Logger
}

var _ Index[string, Entity] = (*TreeIndex[string, Entity])(nil)

func newIndex[K any, T Entity](
	keyFunc func(T) K,
	compare CompareFunc[K],
	unique bool,
	opts []Option,
) *TreeIndex[K, T] {
	itemCompare := func(a, b item[K, T]) int {
		return compare(a.key, b.key)
	}
	return &TreeIndex[K, T]{
		tree:    NewFunc(itemCompare, opts...),
		keyFunc: keyFunc,
		unique:  unique,
		logger:  buildOptions(opts).logger,
	}
}

// NewIndex creates an index that files any number of entities under a key.
func NewIndex[T Entity, K cmp.Ordered](keyFunc func(T) K, opts ...Option) *TreeIndex[K, T] {
	return newIndex(keyFunc, cmp.Compare[K], false, opts)
}

// NewIndexFunc is NewIndex for keys ordered by compare.
func NewIndexFunc[T Entity, K any](keyFunc func(T) K, compare CompareFunc[K], opts ...Option) *TreeIndex[K, T] {
	return newIndex(keyFunc, compare, false, opts)
}

// NewUniqueIndex creates an index that allows one entity per key.
func NewUniqueIndex[T Entity, K cmp.Ordered](keyFunc func(T) K, opts ...Option) *TreeIndex[K, T] {
	return newIndex(keyFunc, cmp.Compare[K], true, opts)
}

func NewUniqueIndexFunc[T Entity, K any](keyFunc func(T) K, compare CompareFunc[K], opts ...Option) *TreeIndex[K, T] {
	return newIndex(keyFunc, compare, true, opts)
}

// Insert files obj under its key, replacing an entry with the same ID.
// Entities without an ID are assigned one. On a unique index, a key held by
// a different entity returns ErrDuplicateKey.
func (idx *TreeIndex[K, T]) Insert(ctx context.Context, obj T) error {
	base := obj.GetBase()
	base.stamp(time.Now())
	key := idx.keyFunc(obj)

	n, err := idx.tree.Search(item[K, T]{key: key})
	if err != nil {
		return err
	}
	if n == nil {
		return idx.tree.Insert(item[K, T]{key: key, bucket: &bucket[T]{entries: []T{obj}}})
	}

	b := n.Value().bucket
	if idx.unique {
		taken := lo.ContainsBy(b.entries, func(e T) bool {
			return e.GetBase().ID != base.ID
		})
		if taken {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		}
	}
	b.put(obj)
	return nil
}

// Delete removes obj from the index. The key is dropped with its last entity.
func (idx *TreeIndex[K, T]) Delete(ctx context.Context, obj T) {
	key := idx.keyFunc(obj)
	n, err := idx.tree.Search(item[K, T]{key: key})
	if err != nil || n == nil {
		return
	}

	b := n.Value().bucket
	b.remove(obj.GetBase().ID)
	if len(b.entries) > 0 {
		return
	}
	if err := idx.tree.Delete(n.Value()); err != nil {
		idx.logger.Error().Err(err).Msg("failed to drop empty key")
	}
}

// Find returns all entities for a given key.
func (idx *TreeIndex[K, T]) Find(ctx context.Context, key K) []T {
	n, err := idx.tree.Search(item[K, T]{key: key})
	if err != nil || n == nil {
		return nil
	}
	return slices.Clone(n.Value().bucket.entries)
}

// Len returns the number of indexed entities.
func (idx *TreeIndex[K, T]) Len() int {
	count := 0
	for it := range idx.tree.InOrder() {
		count += len(it.bucket.entries)
	}
	return count
}

// forRange flattens the buckets yielded by items into fn.
func (idx *TreeIndex[K, T]) forRange(ctx context.Context, items iter.Seq[item[K, T]], fn func(T) bool) {
	for it := range items {
		for _, obj := range it.bucket.entries {
			if ctx.Err() != nil || !fn(obj) {
				return
			}
		}
	}
}

// Ascend iterates in ascending key order.
func (idx *TreeIndex[K, T]) Ascend(ctx context.Context, fn func(T) bool) {
	idx.forRange(ctx, idx.tree.InOrder(), fn)
}

// Descend iterates in descending key order.
func (idx *TreeIndex[K, T]) Descend(ctx context.Context, fn func(T) bool) {
	idx.forRange(ctx, idx.tree.Descending(), fn)
}

// AscendRange iterates over keys in [lower, upper).
func (idx *TreeIndex[K, T]) AscendRange(ctx context.Context, lower, upper K, fn func(T) bool) {
	idx.forRange(ctx, idx.tree.Range(item[K, T]{key: lower}, item[K, T]{key: upper}), fn)
}

// AscendGreaterThanOrEqual iterates from key to the end in ascending order.
func (idx *TreeIndex[K, T]) AscendGreaterThanOrEqual(ctx context.Context, key K, fn func(T) bool) {
	idx.forRange(ctx, idx.tree.AscendGreaterOrEqual(item[K, T]{key: key}), fn)
}

// DescendLessThanOrEqual iterates from key to the beginning in descending order.
func (idx *TreeIndex[K, T]) DescendLessThanOrEqual(ctx context.Context, key K, fn func(T) bool) {
	idx.forRange(ctx, idx.tree.DescendLessOrEqual(item[K, T]{key: key}), fn)
}

func (idx *TreeIndex[K, T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	first := true

	idx.Ascend(context.TODO(), func(obj T) bool {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", obj))
		first = false
		return true
	})

	sb.WriteString("]")
	return sb.String()
}
