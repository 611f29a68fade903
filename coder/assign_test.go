package coder_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag-reviver/coder"
	"tag-reviver/value"
)

func TestAssignNumbers(t *testing.T) {
	tests := []struct {
		name string
		dst  any
		v    any
		want any
		ok   bool
	}{
		{"int into int8", new(int8), 127, int8(127), true},
		{"int8 overflow", new(int8), 300, nil, false},
		{"int8 underflow", new(int8), -129, nil, false},
		{"int into uint", new(uint), 5, uint(5), true},
		{"negative into uint", new(uint), -1, nil, false},
		{"uint64 into int64", new(int64), uint64(math.MaxUint64), nil, false},
		{"uint into uint8", new(uint8), uint(256), nil, false},
		{"whole float into int", new(int), 4.0, 4, true},
		{"fraction into int", new(int), 3.7, nil, false},
		{"fraction into uint", new(uint16), 0.5, nil, false},
		{"huge float into int", new(int), 1e300, nil, false},
		{"nan into int", new(int), math.NaN(), nil, false},
		{"float into float32", new(float32), 1.5, float32(1.5), true},
		{"float32 overflow", new(float32), 1e300, nil, false},
		{"int into float", new(float64), 3, 3.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := reflect.ValueOf(tt.dst).Elem()

			err := coder.Assign(dst, tt.v)
			if !tt.ok {
				require.ErrorIs(t, err, coder.ErrFieldType)
				assert.True(t, dst.IsZero(), "field left untouched")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, dst.Interface())
		})
	}
}

func TestAssignHash(t *testing.T) {
	var m map[any]any

	err := coder.Assign(reflect.ValueOf(&m).Elem(), value.MapOf("a", 1, 2, "b"))
	require.NoError(t, err)
	assert.Equal(t, map[any]any{"a": 1, 2: "b"}, m)

	m = nil
	err = coder.Assign(reflect.ValueOf(&m).Elem(), value.MapOf([]byte("hi"), 1))
	require.ErrorIs(t, err, coder.ErrFieldType)
	assert.Nil(t, m)
}
