package coder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"tag-reviver/coder"
	"tag-reviver/value"
)

type modern struct{ seen *coder.Coder }

func (m *modern) InitWith(c *coder.Coder) error {
	m.seen = c
	return nil
}

type legacy struct{}

func (*legacy) YAMLInitialize(string, *value.Map) error { return nil }

type both struct {
	modern
	legacy
}

type plain struct{}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want coder.CapabilityEnum
	}{
		{"coder on pointer receiver", reflect.TypeFor[modern](), coder.CapabilityCoder},
		{"coder from pointer type", reflect.TypeFor[*modern](), coder.CapabilityCoder},
		{"legacy", reflect.TypeFor[legacy](), coder.CapabilityLegacy},
		{"coder preferred over legacy", reflect.TypeFor[both](), coder.CapabilityCoder},
		{"neither", reflect.TypeFor[plain](), coder.CapabilityAttributes},
		{"nil", nil, coder.CapabilityAttributes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coder.Detect(tt.typ))
		})
	}

	assert.Equal(t, "CapabilityLegacy", coder.CapabilityLegacy.String())
}

func TestCoderForms(t *testing.T) {
	c := coder.NewScalar("!t", "text")
	assert.Equal(t, coder.FormScalar, c.Form)
	_, ok := c.Field("x")
	assert.False(t, ok, "scalar coders have no fields")

	c = coder.NewMap("!t", value.MapOf("name", "ada", "age", 36))
	assert.Equal(t, "ada", c.String("name"))
	assert.Empty(t, c.String("age"))
	assert.Empty(t, c.String("missing"))

	c = coder.NewMap("!t", nil)
	assert.Zero(t, c.Map.Len())

	c = coder.NewSeq("!t", []any{1, 2})
	assert.Equal(t, coder.FormSequence, c.Form)
	assert.Equal(t, "FormSequence", c.Form.String())
}
