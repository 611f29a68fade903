package coder

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"tag-reviver/value"
)

var ErrFieldType = errors.New("value is not assignable to field")

// Assign stores v into dst, converting between the decoder's value model and
// ordinary Go types: numbers to numbers when the value fits the field,
// strings to string kinds, *value.Seq to slices and arrays, value.Hash to Go
// maps, and value.Symbol to string kinds.
func Assign(dst reflect.Value, v any) error {
	if !dst.CanSet() {
		return fmt.Errorf("%w: %s is not settable", ErrFieldType, dst.Type())
	}

	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	src := reflect.ValueOf(v)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}

	switch {
	case isNumber(src.Kind()) && isNumber(dst.Kind()):
		return assignNumber(dst, src)

	case src.Kind() == reflect.String && dst.Kind() == reflect.String:
		dst.Set(src.Convert(dst.Type()))
		return nil

	case dst.Kind() == reflect.Pointer && src.Type().AssignableTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(src)
		dst.Set(p)
		return nil
	}

	switch sv := v.(type) {
	case *value.Seq:
		return assignSeq(dst, sv)
	case value.Hash:
		return assignHash(dst, sv)
	}

	return fmt.Errorf("%w: %T into %s", ErrFieldType, v, dst.Type())
}

func assignSeq(dst reflect.Value, seq *value.Seq) error {
	switch dst.Kind() {
	default:
		return fmt.Errorf("%w: sequence into %s", ErrFieldType, dst.Type())

	case reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), len(seq.Items), len(seq.Items))
		for i, item := range seq.Items {
			if err := Assign(out.Index(i), item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		dst.Set(out)
		return nil

	case reflect.Array:
		if len(seq.Items) > dst.Len() {
			return fmt.Errorf("%w: %d elements into %s", ErrFieldType, len(seq.Items), dst.Type())
		}

		for i, item := range seq.Items {
			if err := Assign(dst.Index(i), item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		return nil
	}
}

func assignHash(dst reflect.Value, h value.Hash) error {
	if dst.Kind() != reflect.Map {
		return fmt.Errorf("%w: mapping into %s", ErrFieldType, dst.Type())
	}

	out := reflect.MakeMapWithSize(dst.Type(), h.Len())
	keyType, elemType := dst.Type().Key(), dst.Type().Elem()

	var err error
	h.Range(func(key, val any) bool {
		k := reflect.New(keyType).Elem()
		if err = Assign(k, key); err != nil {
			err = fmt.Errorf("key %v: %w", key, err)
			return false
		}

		e := reflect.New(elemType).Elem()
		if err = Assign(e, val); err != nil {
			err = fmt.Errorf("value of %v: %w", key, err)
			return false
		}

		if !k.Comparable() {
			err = fmt.Errorf("%w: key %T is not hashable", ErrFieldType, key)
			return false
		}

		out.SetMapIndex(k, e)
		return true
	})

	if err != nil {
		return err
	}

	dst.Set(out)

	return nil
}

// assignNumber converts src into dst, rejecting values the field type cannot
// hold exactly: overflow, negative into unsigned, and fractions into integers.
func assignNumber(dst, src reflect.Value) error {
	if !fitsNumber(dst, src) {
		return fmt.Errorf("%w: %v does not fit %s", ErrFieldType, src, dst.Type())
	}

	dst.Set(src.Convert(dst.Type()))

	return nil
}

func fitsNumber(dst, src reflect.Value) bool {
	switch {
	case src.CanInt():
		n := src.Int()

		switch {
		case dst.CanInt():
			return !dst.OverflowInt(n)
		case dst.CanUint():
			return n >= 0 && !dst.OverflowUint(uint64(n))
		}

	case src.CanUint():
		u := src.Uint()

		switch {
		case dst.CanInt():
			return u <= math.MaxInt64 && !dst.OverflowInt(int64(u))
		case dst.CanUint():
			return !dst.OverflowUint(u)
		}

	case src.CanFloat():
		f := src.Float()

		switch {
		case dst.CanFloat():
			return !dst.OverflowFloat(f)
		case f != math.Trunc(f):
			return false
		case dst.CanInt():
			return f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f))
		case dst.CanUint():
			return f >= 0 && f < math.MaxUint64 && !dst.OverflowUint(uint64(f))
		}
	}

	return true
}

func isNumber(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
