package models

import (
	"bytes"
	"encoding/json"
)

// Mapping - insertion ordered field name to value container, the serialized
// form of one record. Plain go maps lose ordering and encoding/json sorts
// their keys, so the order is tracked explicitly.
type Mapping struct {
	keys   []string
	values map[string]any
}

func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set - appends a field; setting an existing key replaces the value but keeps
// its original position.
func (m *Mapping) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Mapping) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys - field names in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

// MarshalJSON - encodes the mapping as a json object with the keys in
// insertion order, so a Mapping can be handed to gin as a response body
// without losing the field order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
