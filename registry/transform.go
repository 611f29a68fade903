package registry

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrIsNotATransform         = errors.New("provided function is not a recognizable transform")
	ErrTransformIsNotAFunction = errors.New("provided transform is not a function")
	ErrTransformInput          = errors.New("transform cannot accept value")
)

// Transform reinterprets an already revived value. tag is the normalized tag
// the transform was registered under.
type Transform func(tag string, v any) (any, error)

// ParseTransform inspects fn and adapts it into a Transform.
//
// Supports interfaces:
//   - Transform
//   - func(v T) R
//   - func(v T) (R, error)
//   - func(tag string, v T) R
//   - func(tag string, v T) (R, error)
//
// where T is the type of the revived value the transform expects.
func ParseTransform(fn any) (Transform, error) {
	switch f := fn.(type) {
	case Transform:
		return f, nil
	case func(string, any) (any, error):
		return f, nil
	}

	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return nil, ErrTransformIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() {
		return nil, ErrIsNotATransform
	}

	withTag := false
	switch fnType.NumIn() {
	default:
		return nil, ErrIsNotATransform
	case 1:
	case 2:
		if fnType.In(0).Kind() != reflect.String {
			return nil, ErrIsNotATransform
		}

		withTag = true
	}

	hasErr := false
	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotATransform
	case 1:
	case 2:
		if !isError(fnType.Out(1)) {
			return nil, ErrIsNotATransform
		}

		hasErr = true
	}

	valType := fnType.In(fnType.NumIn() - 1)

	return func(tag string, v any) (any, error) {
		arg, err := argument(valType, v)
		if err != nil {
			return nil, err
		}

		args := []reflect.Value{arg}
		if withTag {
			args = []reflect.Value{reflect.ValueOf(tag).Convert(fnType.In(0)), arg}
		}

		out := fnVal.Call(args)
		if hasErr && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}

		return out[0].Interface(), nil
	}, nil
}

func argument(t reflect.Type, v any) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}

		return reflect.Value{}, fmt.Errorf("%w: nil into %s", ErrTransformInput, t)
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %T into %s", ErrTransformInput, v, t)
	}

	return rv, nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
