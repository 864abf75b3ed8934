package chat

// Entity is anything a Collection can hold, unique by id.
type Entity interface {
	EntityID() string
}

// Collection is an insertion-ordered, id-unique store shared by users
// and rooms. It is not safe for concurrent use on its own; the Engine
// serializes all access to its collections behind one mutex.
type Collection[T Entity] struct {
	order []string
	items map[string]T
}

// NewCollection returns an empty collection
func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{items: map[string]T{}}
}

// All returns the id of every entity, in insertion order
func (c *Collection[T]) All() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Get looks up an entity by id. Absence is reported through the bool,
// never an error: a missing entity here is a normal race with a
// concurrent disconnect, not a failure.
func (c *Collection[T]) Get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// Add inserts an entity. Inserting an id already present is a no-op.
func (c *Collection[T]) Add(v T) {
	id := v.EntityID()
	if _, ok := c.items[id]; ok {
		return
	}
	c.items[id] = v
	c.order = append(c.order, id)
}

// Del removes an entity by id. An absent id is a no-op.
func (c *Collection[T]) Del(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored entities
func (c *Collection[T]) Len() int { return len(c.items) }

// Snapshot returns a fresh slice of the current entities in insertion
// order. Callers iterate the snapshot; mutation of the collection
// after the call is not reflected in it.
func (c *Collection[T]) Snapshot() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}
