package coder

import (
	"tag-reviver/value"
)

//go:generate go tool stringer -type=FormEnum -output=form_string.go

type FormEnum int

const (
	_ FormEnum = iota

	FormScalar
	FormSequence
	FormMap

	// FormTotal is a constant that represents the total number of forms defined
	FormTotal = int(iota)
)

// Coder carries the payload handed to an Initializer. Exactly one of Scalar,
// Seq, or Map is meaningful, as told by Form.
type Coder struct {
	Tag    string
	Form   FormEnum
	Scalar string
	Seq    []any
	Map    *value.Map
}

func NewScalar(tag, text string) *Coder {
	return &Coder{Tag: tag, Form: FormScalar, Scalar: text}
}

func NewSeq(tag string, items []any) *Coder {
	return &Coder{Tag: tag, Form: FormSequence, Seq: items}
}

func NewMap(tag string, fields *value.Map) *Coder {
	if fields == nil {
		fields = value.NewMap()
	}

	return &Coder{Tag: tag, Form: FormMap, Map: fields}
}

// Field returns a map-form field by name.
func (c *Coder) Field(name string) (any, bool) {
	if c.Form != FormMap || c.Map == nil {
		return nil, false
	}

	return c.Map.Get(name)
}

// String returns a map-form field as a string, or "" when absent or not a string.
func (c *Coder) String(name string) string {
	v, _ := c.Field(name)
	s, _ := v.(string)

	return s
}

// Initializer is the preferred hook: the type builds itself from a Coder.
type Initializer interface {
	InitWith(c *Coder) error
}

// LegacyInitializer is the deprecated two-argument hook.
type LegacyInitializer interface {
	YAMLInitialize(tag string, fields *value.Map) error
}
