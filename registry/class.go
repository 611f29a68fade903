package registry

import (
	"errors"
	"reflect"

	"tag-reviver/coder"
)

var ErrInvalidClass = errors.New("invalid class")

// RecordNamespace is the reserved qualifier tried when a class name does not
// resolve on its own, so record types may be registered as "Struct::Point".
const RecordNamespace = "Struct::"

// Class is a registered type the decoder can allocate and populate.
type Class struct {
	Name string
	// Type is the non-pointer Go type instances are allocated from.
	Type reflect.Type
	// Capability is the extension tier resolved at registration.
	Capability coder.CapabilityEnum
	// Fields is the field table used for member assignment, nil for non-struct types.
	Fields *coder.FieldTable

	newFn func() any
}

type ClassOption func(*Class)

// WithConstructor replaces the default placeholder constructor (reflect.New of
// the type). The constructor must return a value of the registered type or a
// pointer to it.
func WithConstructor(fn func() any) ClassOption {
	return func(c *Class) {
		c.newFn = fn
	}
}

func newClass(name string, sample any, opts ...ClassOption) (*Class, error) {
	if sample == nil {
		return nil, errors.Join(ErrInvalidClass, errors.New("sample value is nil"))
	}

	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name == "" {
		name = t.Name()
	}

	if name == "" {
		return nil, errors.Join(ErrInvalidClass, errors.New("unnamed type requires an explicit class name"))
	}

	c := &Class{
		Name:       name,
		Type:       t,
		Capability: coder.Detect(t),
		Fields:     coder.NewFieldTable(t),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// New allocates a placeholder instance without running any revival logic.
func (c *Class) New() any {
	if c.newFn != nil {
		return c.newFn()
	}

	return reflect.New(c.Type).Interface()
}

func (c *Class) String() string {
	return c.Name
}
