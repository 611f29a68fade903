package value

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"tag-reviver/internal/common"
	"tag-reviver/internal/match"
)

var ErrRecordShape = errors.New("record field names and values differ in length")

// RecordTag is the struct tag key holding the original field name of a synthesized record.
const RecordTag = "revive"

var anyType = reflect.TypeFor[any]()

// NewRecord synthesizes an anonymous struct type whose fields are named after
// names and returns a pointer to an instance holding vals.
// Field names are CamelCased and de-duplicated; the original name is kept in
// the `revive` struct tag.
func NewRecord(names []string, vals []any) (any, error) {
	if len(names) != len(vals) {
		return nil, fmt.Errorf("%w: %d names, %d values", ErrRecordShape, len(names), len(vals))
	}

	taken := make(map[string]struct{}, len(names))
	fields := make([]reflect.StructField, len(names))

	for i, name := range names {
		fields[i] = reflect.StructField{
			Name: common.NewStem(recordFieldName(name), taken).Claim(),
			Type: anyType,
			Tag:  reflect.StructTag(fmt.Sprintf("%s:%q", RecordTag, name)),
		}
	}

	rv := reflect.New(reflect.StructOf(fields)).Elem()
	for i, v := range vals {
		if v != nil {
			rv.Field(i).Set(reflect.ValueOf(v))
		}
	}

	return rv.Addr().Interface(), nil
}

// RecordField reads a field of a synthesized record by its original name.
func RecordField(record any, name string) (any, bool) {
	rv := reflect.ValueOf(record)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).Tag.Get(RecordTag) == name {
			return rv.Field(i).Interface(), true
		}
	}

	return nil, false
}

func recordFieldName(name string) string {
	var b strings.Builder

	for _, tok := range match.TokenizeIdent(strings.TrimPrefix(name, "@")) {
		first := true
		for _, r := range tok {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}

			if first {
				r = unicode.ToUpper(r)
				first = false
			}

			b.WriteRune(r)
		}
	}

	out := b.String()
	// StructOf only accepts exported field names.
	if out == "" || !unicode.IsUpper([]rune(out)[0]) {
		out = "Field" + out
	}

	return out
}
