package model

// Arena is a dense entity store. IDs are assigned sequentially starting at 1
// in insertion order and are never reused.
type Arena[K ~int, V any] struct {
	items []*V
}

// Add stores a copy of v and returns its new ID.
func (a *Arena[K, V]) Add(v V) K {
	a.items = append(a.items, &v)
	return K(len(a.items))
}

// Get returns the entity stored under id, or nil if there is none.
// The pointer stays valid across later calls to Add.
func (a *Arena[K, V]) Get(id K) *V {
	if id < 1 || int(id) > len(a.items) {
		return nil
	}
	return a.items[id-1]
}

// Has reports whether id exists.
func (a *Arena[K, V]) Has(id K) bool {
	return id >= 1 && int(id) <= len(a.items)
}

// Len returns the number of stored entities.
func (a *Arena[K, V]) Len() int {
	return len(a.items)
}

// NextID returns the ID the next call to Add will assign.
func (a *Arena[K, V]) NextID() K {
	return K(len(a.items) + 1)
}

// IDs returns all IDs in ascending order.
func (a *Arena[K, V]) IDs() []K {
	ids := make([]K, len(a.items))
	for i := range a.items {
		ids[i] = K(i + 1)
	}
	return ids
}
