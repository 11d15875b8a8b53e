package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingKeepsInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("id", uint(1))
	m.Set("name", "Lion")
	m.Set("species", "lion")

	assert.Equal(t, []string{"id", "name", "species"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMappingOverwriteKeepsPosition(t *testing.T) {
	m := NewMapping()
	m.Set("id", uint(1))
	m.Set("name", "Lion")
	m.Set("id", uint(2))

	// overwriting must not move the key to the back
	assert.Equal(t, []string{"id", "name"}, m.Keys())

	value, ok := m.Get("id")
	require.True(t, ok)
	assert.Equal(t, uint(2), value)
}

func TestMappingGetMissingKey(t *testing.T) {
	m := NewMapping()
	m.Set("id", uint(1))

	_, ok := m.Get("species")
	assert.False(t, ok)
}

func TestMappingZeroValueUsable(t *testing.T) {
	var m Mapping
	m.Set("id", uint(0))

	assert.Equal(t, 1, m.Len())

	value, ok := m.Get("id")
	require.True(t, ok)
	assert.Equal(t, uint(0), value)
}

func TestMappingMarshalJSONOrder(t *testing.T) {
	m := NewMapping()
	m.Set("id", uint(3))
	m.Set("name", "Eagle")
	m.Set("is_active", true)

	body, err := json.Marshal(m)
	require.NoError(t, err)
	// go maps would reorder these keys alphabetically
	assert.Equal(t, `{"id":3,"name":"Eagle","is_active":true}`, string(body))
}

func TestMappingMarshalJSONNested(t *testing.T) {
	species := NewMapping()
	species.Set("lion", int64(2))
	species.Set("eagle", int64(1))

	m := NewMapping()
	m.Set("animals", int64(3))
	m.Set("species", species)

	body, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"animals":3,"species":{"lion":2,"eagle":1}}`, string(body))
}

func TestMappingMarshalJSONEmpty(t *testing.T) {
	body, err := json.Marshal(NewMapping())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(body))
}
