package util

// OrderedMap is a string keyed map which remembers the order in which keys
// were first inserted. Overwriting a key keeps its position.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap creates an empty map
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: map[string]V{}}
}

// Set stores v under key
func (m *OrderedMap[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = map[string]V{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of all keys in insertion order
func (m *OrderedMap[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Map returns an unordered copy
func (m *OrderedMap[V]) Map() map[string]V {
	out := make(map[string]V, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Clear drops all entries
func (m *OrderedMap[V]) Clear() {
	m.keys = m.keys[:0]
	m.values = map[string]V{}
}
