package screens

import "context"

// Index keeps a fetched collection in order together with an id lookup
type Index[T any] struct {
	items []T
	byID  map[string]T
}

// NewIndex indexes items by the given id accessor
func NewIndex[T any](items []T, id func(T) string) Index[T] {
	byID := make(map[string]T, len(items))
	for _, item := range items {
		byID[id(item)] = item
	}
	return Index[T]{items: items, byID: byID}
}

// Get looks a record up by id
func (i Index[T]) Get(id string) (T, bool) {
	item, ok := i.byID[id]
	return item, ok
}

// All returns the records in fetch order
func (i Index[T]) All() []T {
	return i.items
}

// Len returns the number of records
func (i Index[T]) Len() int {
	return len(i.items)
}

// Related fetches a collection a screen needs besides its own records.
// The returned store function is applied only when every fetch of the
// load cycle succeeded.
type Related func(ctx context.Context) (store func(), err error)

// Relate builds a Related that fetches with list and stores the result as
// an Index in into
func Relate[T any](list func(ctx context.Context) ([]T, error), id func(T) string, into *Index[T]) Related {
	return func(ctx context.Context) (func(), error) {
		items, err := list(ctx)
		if err != nil {
			return nil, err
		}
		return func() { *into = NewIndex(items, id) }, nil
	}
}
