package execution

import (
	"bytes"
	"encoding/json"
)

// OrderedMap is a response object's field map: spec.md §3 requires a
// response object's key order to match first-encountered selection order,
// which a plain Go map cannot guarantee once serialized. Completed Object
// values are always *OrderedMap so pkg/graphqlerrors (and any other
// encoding/json-based transport) renders keys in the order fields were
// requested rather than Go's randomized map order.
type OrderedMap struct {
	keys   []string
	values map[string]interface{}
}

// NewOrderedMap returns an empty map sized for n fields.
func NewOrderedMap(n int) *OrderedMap {
	return &OrderedMap{values: make(map[string]interface{}, n)}
}

// Set appends key (if new) and stores value, overwriting an existing key's
// value in place without moving its position.
func (m *OrderedMap) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key, or (nil, false).
func (m *OrderedMap) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the response keys in insertion order.
func (m *OrderedMap) Keys() []string {
	return m.keys
}

// Len reports how many keys are set.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// MarshalJSON renders the map as a JSON object with keys in insertion
// order, since encoding/json would otherwise sort a map[string]any's keys.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
