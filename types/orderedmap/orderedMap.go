// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

// Entry is a key-value pair held by an OrderedMap. Entries are linked in insertion order.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
	prev  *Entry[K, V]
	next  *Entry[K, V]
}

// Next returns the entry inserted after e or nil
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return e.next
}

// Prev returns the entry inserted before e or nil
func (e *Entry[K, V]) Prev() *Entry[K, V] {
	return e.prev
}

// OrderedMap definition data is stored in insertion order
type OrderedMap[K comparable, V any] struct {
	store map[K]*Entry[K, V]
	head  *Entry[K, V]
	tail  *Entry[K, V]
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*Entry[K, V]{},
	}
}

// Set stores val under key. Overwriting an existing key keeps its position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, ok := o.store[key]; ok {
		e.Value = val
		return
	}

	e := &Entry[K, V]{Key: key, Value: val, prev: o.tail}
	if o.tail != nil {
		o.tail.next = e
	} else {
		o.head = e
	}
	o.tail = e
	o.store[key] = e
}

// Get returns the value associated with key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	if e, ok := o.store[key]; ok {
		return e.Value, true
	}

	return *new(V), false
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, ok := o.store[key]
	return ok
}

// Delete removes key and its value. Deleting a missing key is a no-op.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, ok := o.store[key]
	if !ok {
		return
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		o.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		o.tail = e.prev
	}
	e.prev, e.next = nil, nil
	delete(o.store, key)
}

// Len returns the number of keys
func (o *OrderedMap[K, V]) Len() int {
	return len(o.store)
}

// Front returns the oldest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Entry[K, V] {
	return o.head
}

// Back returns the newest entry or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Entry[K, V] {
	return o.tail
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(o.store))
	for e := o.head; e != nil; e = e.next {
		keys = append(keys, e.Key)
	}

	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(o.store))
	for e := o.head; e != nil; e = e.next {
		values = append(values, e.Value)
	}

	return values
}
