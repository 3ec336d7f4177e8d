// Package value holds the dynamic document tree the JSON formatter builds:
// a tagged union of strings, numbers, booleans, ordered maps and lists.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Kind int

const (
	Null Kind = iota
	String
	Int
	Float
	Bool
	MapKind
	ListKind
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case MapKind:
		return "map"
	case ListKind:
		return "list"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is one node of a document. The zero Value is null.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	m    *Map
	l    *List
}

func Str(s string) Value      { return Value{kind: String, s: s} }
func IntOf(i int64) Value     { return Value{kind: Int, i: i} }
func FloatOf(f float64) Value { return Value{kind: Float, f: f} }
func BoolOf(b bool) Value     { return Value{kind: Bool, b: b} }

// Of wraps a map. A nil map is null.
func Of(m *Map) Value {
	if m == nil {
		return Value{}
	}
	return Value{kind: MapKind, m: m}
}

// OfList wraps a list. A nil list is null.
func OfList(l *List) Value {
	if l == nil {
		return Value{}
	}
	return Value{kind: ListKind, l: l}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == Null }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

func (v Value) AsInt() (int64, bool) { return v.i, v.kind == Int }

func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case Float:
		return v.f, true
	case Int:
		return float64(v.i), true
	}
	return 0, false
}

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Bool }

// AsMap returns the map payload, or nil when v is not a map.
func (v Value) AsMap() *Map {
	if v.kind != MapKind {
		return nil
	}
	return v.m
}

// AsList returns the list payload, or nil when v is not a list.
func (v Value) AsList() *List {
	if v.kind != ListKind {
		return nil
	}
	return v.l
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Null:
		return []byte("null"), nil
	case String:
		return json.Marshal(v.s)
	case Int:
		return json.Marshal(v.i)
	case Float:
		return json.Marshal(v.f)
	case Bool:
		return json.Marshal(v.b)
	case MapKind:
		return v.m.MarshalJSON()
	case ListKind:
		return v.l.MarshalJSON()
	}
	return nil, fmt.Errorf("marshaling value: unknown kind %s", v.kind)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("unmarshaling value: empty input")
	}

	switch c := data[0]; {
	case c == 'n':
		*v = Value{}
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Str(s)
	case c == 't' || c == 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolOf(b)
	case c == '{':
		m := NewMap()
		if err := m.UnmarshalJSON(data); err != nil {
			return err
		}
		*v = Of(m)
	case c == '[':
		l := NewList()
		if err := l.UnmarshalJSON(data); err != nil {
			return err
		}
		*v = OfList(l)
	default:
		var i int64
		if err := json.Unmarshal(data, &i); err == nil {
			*v = IntOf(i)
			return nil
		}
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("unmarshaling value %q: %w", data, err)
		}
		*v = FloatOf(f)
	}
	return nil
}
