package coder

import (
	"reflect"
	"strings"

	"tag-reviver/internal/match"
)

// FieldTag is the struct tag key naming the payload field a struct field is filled from.
const FieldTag = "revive"

// FieldTable maps payload field names to the struct fields of a registered type.
//
// Lookup tries, in order: the `revive` struct tag, the json tag name, the exact
// field name, a case-insensitive name, and finally a normalized identifier
// (so "first_name" finds FirstName).
type FieldTable struct {
	typ     reflect.Type
	fields  []reflect.StructField
	byExact map[string]int
	byLower map[string]int
	byNorm  map[string]int
}

// NewFieldTable builds the table for t, or returns nil when t (after
// dereferencing pointers) is not a struct.
func NewFieldTable(t reflect.Type) *FieldTable {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	ft := &FieldTable{
		typ:     t,
		byExact: make(map[string]int),
		byLower: make(map[string]int),
		byNorm:  make(map[string]int),
	}

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}

		tag := f.Tag.Get(FieldTag)
		if tag == "-" {
			continue
		}

		i := len(ft.fields)
		ft.fields = append(ft.fields, f)

		// earlier (shallower) fields win over promoted ones
		for _, name := range []string{tag, jsonTagName(f), f.Name} {
			if name == "" {
				continue
			}

			if _, ok := ft.byExact[name]; !ok {
				ft.byExact[name] = i
			}
		}

		if _, ok := ft.byLower[strings.ToLower(f.Name)]; !ok {
			ft.byLower[strings.ToLower(f.Name)] = i
		}

		if _, ok := ft.byNorm[match.NormalizeIdent(f.Name)]; !ok {
			ft.byNorm[match.NormalizeIdent(f.Name)] = i
		}
	}

	return ft
}

// Type returns the struct type the table was built for.
func (ft *FieldTable) Type() reflect.Type {
	return ft.typ
}

// Lookup finds the struct field filled from the payload field name.
// A leading "@" is ignored.
func (ft *FieldTable) Lookup(name string) (reflect.StructField, bool) {
	if ft == nil {
		return reflect.StructField{}, false
	}

	name = strings.TrimPrefix(name, "@")

	if i, ok := ft.byExact[name]; ok {
		return ft.fields[i], true
	}

	if i, ok := ft.byLower[strings.ToLower(name)]; ok {
		return ft.fields[i], true
	}

	if i, ok := ft.byNorm[match.NormalizeIdent(name)]; ok {
		return ft.fields[i], true
	}

	return reflect.StructField{}, false
}

// Set assigns v to the field named name on the struct pointed to by instance.
// It reports false when no field matches.
func (ft *FieldTable) Set(instance any, name string, v any) (bool, error) {
	f, ok := ft.Lookup(name)
	if !ok {
		return false, nil
	}

	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false, nil
		}

		rv = rv.Elem()
	}

	if rv.Type() != ft.typ {
		return false, nil
	}

	dst, err := rv.FieldByIndexErr(f.Index)
	if err != nil {
		return false, err
	}

	return true, Assign(dst, v)
}

func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag
}
