package store

import "slices"

// collection is an ordered set of records with session-unique ids. It is not safe
// for concurrent use; Store serializes access.
type collection[T any] struct {
	name   string
	items  []T
	lastID int

	id     func(T) int
	withID func(T, int) T
	// clone returns a copy sharing no mutable memory with its argument.
	clone func(T) T
}

func newCollection[T any](name string, id func(T) int, withID func(T, int) T, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(record T) T { return record }
	}
	return &collection[T]{
		name:   name,
		items:  []T{},
		id:     id,
		withID: withID,
		clone:  clone,
	}
}

// add stores a copy of record under the next id. Ids are never handed out twice,
// even after the record holding one was deleted.
func (c *collection[T]) add(record T) T {
	c.lastID++
	stored := c.withID(c.clone(record), c.lastID)
	c.items = append(c.items, stored)
	return c.clone(stored)
}

func (c *collection[T]) update(id int, apply func(T) T) (T, bool) {
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	// apply must not be able to change the id.
	updated := c.withID(c.clone(apply(c.clone(c.items[i]))), id)
	c.items[i] = updated
	return c.clone(updated), true
}

func (c *collection[T]) remove(id int) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

func (c *collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	for i, record := range c.items {
		out[i] = c.clone(record)
	}
	return out
}

func (c *collection[T]) indexOf(id int) int {
	return slices.IndexFunc(c.items, func(record T) bool {
		return c.id(record) == id
	})
}
