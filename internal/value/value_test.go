package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_KeepsInsertionOrder(t *testing.T) {
	m := NewMap()
	m.SetString("keyword", "Feature")
	m.SetString("name", "Login")
	m.SetInt("line", 1)
	m.SetString("description", "")

	assert.Equal(t, []string{"keyword", "name", "line", "description"}, m.Keys())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"keyword":"Feature","name":"Login","line":1,"description":""}`, string(out))
}

func TestMap_SetExistingKeyKeepsPosition(t *testing.T) {
	m := NewMap()
	m.SetString("a", "1")
	m.SetString("b", "2")
	m.SetString("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, "3", m.GetString("a"))
}

func TestMap_GetOrCreateListIsLazy(t *testing.T) {
	m := NewMap()
	_, ok := m.Get("steps")
	assert.False(t, ok)

	steps := m.GetOrCreateList("steps")
	steps.Append(Str("one"))

	again := m.GetOrCreateList("steps")
	again.Append(Str("two"))

	assert.Same(t, steps, again)
	assert.Equal(t, 2, steps.Len())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"steps":["one","two"]}`, string(out))
}

func TestMap_GetOrCreateListReplacesNonList(t *testing.T) {
	m := NewMap()
	m.SetString("steps", "oops")

	l := m.GetOrCreateList("steps")
	assert.Equal(t, 0, l.Len())

	v, ok := m.Get("steps")
	require.True(t, ok)
	assert.Equal(t, ListKind, v.Kind())
}

func TestList_Last(t *testing.T) {
	l := NewList()
	_, ok := l.Last()
	assert.False(t, ok)

	l.Append(IntOf(1))
	l.Append(IntOf(2))
	last, ok := l.Last()
	require.True(t, ok)
	n, _ := last.AsInt()
	assert.Equal(t, int64(2), n)
}

func TestList_EmptyMarshalsAsArray(t *testing.T) {
	out, err := json.Marshal(NewList())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestValue_NullMarshalsAsNull(t *testing.T) {
	out, err := json.Marshal(Value{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))

	assert.True(t, Of(nil).IsNull())
	assert.True(t, OfList(nil).IsNull())
}

func TestValue_UnmarshalPreservesShape(t *testing.T) {
	input := `{"name":"Login","line":3,"ratio":0.5,"ok":true,"none":null,"elements":[{"type":"scenario"}]}`

	var v Value
	require.NoError(t, json.Unmarshal([]byte(input), &v))

	m := v.AsMap()
	require.NotNil(t, m)
	assert.Equal(t, []string{"name", "line", "ratio", "ok", "none", "elements"}, m.Keys())

	line, _ := m.Get("line")
	n, ok := line.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(3), n)

	ratio, _ := m.Get("ratio")
	f, ok := ratio.AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-9)

	none, _ := m.Get("none")
	assert.True(t, none.IsNull())

	elements, _ := m.Get("elements")
	require.NotNil(t, elements.AsList())
	first := elements.AsList().At(0).AsMap()
	require.NotNil(t, first)
	assert.Equal(t, "scenario", first.GetString("type"))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestEmbedding_FieldOrder(t *testing.T) {
	out, err := json.Marshal(Embedding("image/png", "AQID"))
	require.NoError(t, err)
	assert.Equal(t, `{"mime_type":"image/png","data":"AQID"}`, string(out))
}
