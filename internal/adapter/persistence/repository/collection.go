package repository

import (
	"context"
	"errors"
	"fmt"

	"klusmarkt/internal/infrastructure/storage"
)

// ErrDuplicateID is returned when Create is given an id already stored.
var ErrDuplicateID = errors.New("repository: duplicate id")

type identifiable interface {
	EntityID() string
}

// collection is a JSON array of T stored under one key. Insertion order is kept.
type collection[T identifiable] struct {
	key string
}

func (c collection[T]) all(ctx context.Context, r storage.Reader) ([]T, error) {
	items, _, err := storage.Load[[]T](ctx, r, c.key)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func indexOf[T identifiable](items []T, id string) int {
	for i := range items {
		if items[i].EntityID() == id {
			return i
		}
	}
	return -1
}

// find returns the zero T when id is absent.
func (c collection[T]) find(ctx context.Context, r storage.Reader, id string) (T, error) {
	var zero T
	items, err := c.all(ctx, r)
	if err != nil {
		return zero, err
	}
	if i := indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return zero, nil
}

func (c collection[T]) insert(ctx context.Context, tx *storage.Txn, item T) error {
	items, err := c.all(ctx, tx)
	if err != nil {
		return err
	}
	if indexOf(items, item.EntityID()) >= 0 {
		return fmt.Errorf("%w: %s %s", ErrDuplicateID, c.key, item.EntityID())
	}
	return tx.Set(c.key, append(items, item))
}

// upsert replaces the item with the same id in place or appends it.
func (c collection[T]) upsert(ctx context.Context, tx *storage.Txn, item T) error {
	items, err := c.all(ctx, tx)
	if err != nil {
		return err
	}
	if i := indexOf(items, item.EntityID()); i >= 0 {
		items[i] = item
	} else {
		items = append(items, item)
	}
	return tx.Set(c.key, items)
}

// modify applies fn to the stored item. found is false, and fn is not called,
// when id is absent. An error from fn aborts the write.
func (c collection[T]) modify(ctx context.Context, tx *storage.Txn, id string, fn func(*T) error) (T, bool, error) {
	var zero T
	items, err := c.all(ctx, tx)
	if err != nil {
		return zero, false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, false, nil
	}
	item := items[i]
	if err := fn(&item); err != nil {
		return zero, true, err
	}
	items[i] = item
	if err := tx.Set(c.key, items); err != nil {
		return zero, true, err
	}
	return item, true, nil
}

// delete removes id and returns the removed item, or the zero T when absent.
func (c collection[T]) delete(ctx context.Context, tx *storage.Txn, id string) (T, error) {
	return c.deleteIf(ctx, tx, id, nil)
}

// deleteIf is delete with a guard run against the stored item; a guard error
// aborts the write.
func (c collection[T]) deleteIf(ctx context.Context, tx *storage.Txn, id string, guard func(T) error) (T, error) {
	var zero T
	items, err := c.all(ctx, tx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, nil
	}
	removed := items[i]
	if guard != nil {
		if err := guard(removed); err != nil {
			return zero, err
		}
	}
	items = append(items[:i], items[i+1:]...)
	return removed, tx.Set(c.key, items)
}
