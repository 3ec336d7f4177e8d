package value

import "encoding/json"

// List is an ordered sequence of values. It is always handled by pointer so
// appends through a nested reference are visible to the enclosing map.
type List struct {
	items []Value
}

func NewList(items ...Value) *List {
	return &List{items: items}
}

func (l *List) Append(v Value) {
	l.items = append(l.items, v)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) At(i int) Value {
	return l.items[i]
}

// Last returns the final entry, or false when the list is empty.
func (l *List) Last() (Value, bool) {
	if len(l.items) == 0 {
		return Value{}, false
	}
	return l.items[len(l.items)-1], true
}

func (l *List) Items() []Value {
	return l.items
}

func (l *List) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

func (l *List) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &l.items)
}

// Embedding builds the {"mime_type", "data"} record attached to a step.
// data is expected to be base64 text already.
func Embedding(mimeType, data string) *Map {
	m := NewMap()
	m.SetString("mime_type", mimeType)
	m.SetString("data", data)
	return m
}
