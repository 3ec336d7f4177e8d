package value

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is a string-keyed map that remembers insertion order, so documents
// serialize with their keys in the order they were set.
type Map struct {
	om *orderedmap.OrderedMap[string, Value]
}

func NewMap() *Map {
	return &Map{om: orderedmap.New[string, Value]()}
}

// Set stores v under key. Replacing an existing key keeps its position.
func (m *Map) Set(key string, v Value) {
	m.om.Set(key, v)
}

// SetString is shorthand for Set(key, Str(s)).
func (m *Map) SetString(key, s string) { m.Set(key, Str(s)) }

// SetInt is shorthand for Set(key, IntOf(i)).
func (m *Map) SetInt(key string, i int64) { m.Set(key, IntOf(i)) }

func (m *Map) Get(key string) (Value, bool) {
	return m.om.Get(key)
}

// GetString returns the string stored under key, or "" if absent or not a string.
func (m *Map) GetString(key string) string {
	v, _ := m.om.Get(key)
	s, _ := v.AsString()
	return s
}

func (m *Map) Delete(key string) {
	m.om.Delete(key)
}

func (m *Map) Len() int {
	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// GetOrCreateList returns the list stored under key, storing a new empty
// list there first if the key is absent or holds something else.
func (m *Map) GetOrCreateList(key string) *List {
	if v, ok := m.om.Get(key); ok {
		if l := v.AsList(); l != nil {
			return l
		}
	}
	l := NewList()
	m.om.Set(key, OfList(l))
	return l
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return m.om.MarshalJSON()
}

func (m *Map) UnmarshalJSON(data []byte) error {
	if m.om == nil {
		m.om = orderedmap.New[string, Value]()
	}
	return m.om.UnmarshalJSON(data)
}
