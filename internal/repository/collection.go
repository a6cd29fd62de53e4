package repository

import (
	"mythos_backend/internal/model"
)

// collection is an insertion-ordered id -> record map with its own id counter.
// It is not safe for concurrent use; ContentStore serializes access.
type collection[T model.Record] struct {
	nextID uint
	order  []uint
	items  map[uint]*T
}

func newCollection[T model.Record]() *collection[T] {
	return &collection[T]{nextID: 1, items: make(map[uint]*T)}
}

// insert assigns the next id and stores the record built for it.
func (c *collection[T]) insert(build func(id uint) T) T {
	id := c.nextID
	c.nextID++

	rec := build(id)
	c.items[id] = &rec
	c.order = append(c.order, id)
	return rec
}

// get returns a copy of the record with the given id.
func (c *collection[T]) get(id uint) (*T, bool) {
	rec, ok := c.items[id]
	if !ok {
		return nil, false
	}
	out := *rec
	return &out, true
}

// find returns a copy of the first record, in insertion order, that matches.
func (c *collection[T]) find(match func(*T) bool) (*T, bool) {
	for _, id := range c.order {
		if rec := c.items[id]; match(rec) {
			out := *rec
			return &out, true
		}
	}
	return nil, false
}

// filter returns copies of all matching records in insertion order.
// A nil match keeps everything. The result is never nil.
func (c *collection[T]) filter(match func(*T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rec := c.items[id]
		if match == nil || match(rec) {
			out = append(out, *rec)
		}
	}
	return out
}

// update applies fn to the stored record in place and returns the result.
func (c *collection[T]) update(id uint, fn func(*T)) (*T, bool) {
	rec, ok := c.items[id]
	if !ok {
		return nil, false
	}
	fn(rec)
	out := *rec
	return &out, true
}

func (c *collection[T]) remove(id uint) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) len() int {
	return len(c.order)
}

func (c *collection[T]) name() string {
	var zero T
	return zero.CollectionName()
}
