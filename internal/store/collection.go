package store

// collection keeps entities in insertion order with an id index.
// Callers hold the store lock; collection itself is not synchronized.
type collection[T any] struct {
	items []T
	index map[string]int
	id    func(*T) string
}

func newCollection[T any](id func(*T) string) *collection[T] {
	return &collection[T]{
		index: make(map[string]int),
		id:    id,
	}
}

// replace swaps the full contents, copying the input so later caller
// mutations cannot reach into the store.
func (c *collection[T]) replace(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.index = make(map[string]int, len(items))
	for i := range c.items {
		c.index[c.id(&c.items[i])] = i
	}
}

func (c *collection[T]) insert(item T) T {
	c.items = append(c.items, item)
	c.index[c.id(&item)] = len(c.items) - 1
	return item
}

func (c *collection[T]) update(id string, apply func(*T)) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	apply(&c.items[i])
	return true
}

func (c *collection[T]) remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.id(&c.items[j])] = j
	}
	return true
}

func (c *collection[T]) get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// all returns a copy of the items in insertion order.
func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}
