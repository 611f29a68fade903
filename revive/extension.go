package revive

import (
	"fmt"
	"reflect"

	"tag-reviver/coder"
	"tag-reviver/diagnostic"
	"tag-reviver/internal/common"
	"tag-reviver/node"
	"tag-reviver/registry"
	"tag-reviver/value"
)

// initWith hands fields to instance through the first tier the class supports:
// the coder hook, the legacy hook, or attribute assignment. A nil class means
// a generic instance from the value package, which always takes attributes.
func (d *Decoder) initWith(n *node.Node, class *registry.Class, instance any, fields *value.Map) error {
	capability := coder.CapabilityAttributes
	if class != nil {
		capability = class.Capability
	}

	switch capability {
	case coder.CapabilityCoder:
		init, ok := instance.(coder.Initializer)
		if !ok {
			return unsupported(class, instance)
		}

		if err := init.InitWith(coder.NewMap(n.Tag, fields)); err != nil {
			return fmt.Errorf("%s: %w", class, err)
		}

		return nil

	case coder.CapabilityLegacy:
		legacy, ok := instance.(coder.LegacyInitializer)
		if !ok {
			return unsupported(class, instance)
		}

		d.warn(n, diagnostic.CodeLegacyHook, fmt.Sprintf(
			"%s implements the deprecated YAMLInitialize, implement InitWith(*coder.Coder) instead",
			common.TypeName(reflect.TypeOf(instance))))

		if err := legacy.YAMLInitialize(n.Tag, fields); err != nil {
			return fmt.Errorf("%s: %w", class, err)
		}

		return nil
	}

	if fields == nil {
		return nil
	}

	var err error
	fields.Range(func(key, val any) bool {
		err = d.setAttribute(n, class, instance, attributeName(fmt.Sprint(key)), val)
		return err == nil
	})

	return err
}

// setAttribute assigns one field: a matching struct field first, then an
// AttributeSetter. Structs drop what they cannot hold with a warning.
func (d *Decoder) setAttribute(n *node.Node, class *registry.Class, instance any, name string, v any) error {
	if class != nil && class.Fields != nil {
		ok, err := class.Fields.Set(instance, name, v)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", class, name, err)
		}

		if ok {
			return nil
		}
	}

	if setter, ok := instance.(value.AttributeSetter); ok {
		return setter.SetAttribute(name, v)
	}

	if isStructPointer(instance) {
		d.warn(n, diagnostic.CodeDroppedAttribute, fmt.Sprintf(
			"%s has no field for attribute %q", common.TypeName(reflect.TypeOf(instance)), name))

		return nil
	}

	return fmt.Errorf("%w: cannot set attribute %q on %T", diagnostic.ErrUnsupportedExtension, name, instance)
}

// push appends v to a typed sequence instance: a value.Pusher or a pointer to a slice.
func push(list any, v any) error {
	if p, ok := list.(value.Pusher); ok {
		return p.Push(v)
	}

	rv := reflect.ValueOf(list)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("%w: %T accepts no elements", diagnostic.ErrUnsupportedExtension, list)
	}

	slice := rv.Elem()
	elem := reflect.New(slice.Type().Elem()).Elem()

	if err := coder.Assign(elem, v); err != nil {
		return fmt.Errorf("element %d: %w", slice.Len(), err)
	}

	slice.Set(reflect.Append(slice, elem))

	return nil
}

func isStructPointer(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}
