package value

import (
	"reflect"
)

// Map is a mapping that remembers insertion order.
//
// Keys of comparable scalar kinds (numbers, strings, booleans, pointers) are
// indexed; any other key is compared structurally with a linear scan.
// Overwriting a key keeps its original position.
type Map struct {
	keys  []any
	vals  []any
	index map[any]int
}

func NewMap() *Map {
	return &Map{index: make(map[any]int)}
}

// MapOf builds a map from interleaved key/value arguments.
func MapOf(keyValues ...any) *Map {
	m := NewMap()
	for i := 0; i+1 < len(keyValues); i += 2 {
		m.Set(keyValues[i], keyValues[i+1])
	}

	return m
}

func (m *Map) Set(key, val any) {
	if i, ok := m.find(key); ok {
		m.vals[i] = val
		return
	}

	if hashable(key) {
		if m.index == nil {
			m.index = make(map[any]int)
		}

		m.index[key] = len(m.keys)
	}

	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

func (m *Map) Get(key any) (any, bool) {
	i, ok := m.find(key)
	if !ok {
		return nil, false
	}

	return m.vals[i], true
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key any) bool {
	i, ok := m.find(key)
	if !ok {
		return false
	}

	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)

	clear(m.index)
	for j, k := range m.keys {
		if hashable(k) {
			m.index[k] = j
		}
	}

	return true
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []any {
	return append([]any(nil), m.keys...)
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key, val any) bool) {
	for i := range m.keys {
		if !fn(m.keys[i], m.vals[i]) {
			return
		}
	}
}

func (m *Map) find(key any) (int, bool) {
	if hashable(key) {
		i, ok := m.index[key]
		return i, ok
	}

	for i, k := range m.keys {
		if !hashable(k) && reflect.DeepEqual(k, key) {
			return i, true
		}
	}

	return 0, false
}

func hashable(key any) bool {
	if key == nil {
		return true
	}

	switch reflect.TypeOf(key).Kind() {
	default:
		return false
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	}
}

// AsHash returns v as a Hash when it is one of the mapping containers.
func AsHash(v any) (Hash, bool) {
	h, ok := v.(Hash)
	return h, ok
}
