package revive_test

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag-reviver/diagnostic"
	"tag-reviver/node"
	"tag-reviver/options"
	"tag-reviver/registry"
	"tag-reviver/revive"
	"tag-reviver/value"
)

func TestScalar_plain(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want any
	}{
		{"int", "42", 42},
		{"quoted int", `"42"`, "42"},
		{"single quoted", `'true'`, "true"},
		{"literal block", "|\n  yes\n", "yes\n"},
		{"bool", "yes", true},
		{"null", "~", nil},
		{"symbol", ":name", value.Symbol("name")},
		{"explicit str", "!!str 42", "42"},
		{"short str", "!str 42", "42"},
		{"unknown tag classifies", "!whatever 42", 42},
		{"unknown tag quoted", `!whatever "42"`, "42"},
		{"binary", "!!binary aGVsbG8=", []byte("hello")},
		{"binary short", "!binary |\n  aGVs\n  bG8=\n", []byte("hello")},
		{"float tag", "!!float 1", 1.0},
		{"float short", "!float 2.5", 2.5},
		{"symbol tag", "!native/sym name", value.Symbol("name")},
		{"symbol tag long", "!native/symbol:x name", value.Symbol("name")},
		{"complex", "!native/object:Complex 1+2i", complex(1, 2)},
		{"date time", "!native/object:DateTime 2001-12-14 21:59:43 Z", time.Date(2001, 12, 14, 21, 59, 43, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := load(t, nil, tt.src)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestScalar_numericObjects(t *testing.T) {
	v, _ := load(t, nil, "!native/object:Rational 1/3")
	r, ok := v.(*big.Rat)
	require.True(t, ok)
	assert.Equal(t, 0, big.NewRat(1, 3).Cmp(r))

	v, _ = load(t, nil, "!native/object:BigDecimal 18:0.1E1")
	f, ok := v.(*big.Float)
	require.True(t, ok)

	got, _ := f.Float64()
	assert.InDelta(t, 1.0, got, 1e-12)

	v, _ = load(t, nil, "!native/object:BigDecimal 123456789012345678901234567890.5")
	f, ok = v.(*big.Float)
	require.True(t, ok)
	assert.Equal(t, "123456789012345678901234567890.5", f.Text('f', 1))
}

func TestScalar_range(t *testing.T) {
	v, _ := load(t, nil, "!native/range 1..5")
	r, ok := v.(value.Range)
	require.True(t, ok)
	assert.Equal(t, value.Range{Begin: 1, End: 5}, r)
	assert.True(t, r.Contains(5))

	v, _ = load(t, nil, "!native/range 1...5")
	r, ok = v.(value.Range)
	require.True(t, ok)
	assert.Equal(t, value.Range{Begin: 1, End: 5, Exclusive: true}, r)
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))

	v, _ = load(t, nil, "!native/range a..z")
	assert.Equal(t, value.Range{Begin: "a", End: "z"}, v)

	v, _ = load(t, nil, "!native/range 1.5..2")
	assert.Equal(t, value.Range{Begin: 1.5, End: 2}, v)

	err := loadErr(t, nil, "!native/range 15")
	require.ErrorIs(t, err, diagnostic.ErrMalformedLiteral)
}

func TestScalar_regexp(t *testing.T) {
	v, _ := load(t, nil, "!native/regexp /ab/i")

	re, ok := v.(*value.Regexp)
	require.True(t, ok)
	assert.Equal(t, "ab", re.Source)
	assert.Equal(t, value.RegexpIgnoreCase, re.Flags)
	assert.Empty(t, re.Lang)

	matched, err := re.MatchString("xABx")
	require.NoError(t, err)
	assert.True(t, matched)

	v, _ = load(t, nil, `!native/regexp "/a.b/mxu"`)
	re, ok = v.(*value.Regexp)
	require.True(t, ok)
	assert.Equal(t, value.RegexpMultiline|value.RegexpExtended, re.Flags)
	assert.Equal(t, "u", re.Lang)
	assert.Equal(t, "/a.b/mxu", re.String())

	err = loadErr(t, nil, "!native/regexp ab")
	require.ErrorIs(t, err, diagnostic.ErrMalformedLiteral)

	err = loadErr(t, nil, `!native/regexp "/(ab/"`)
	require.ErrorIs(t, err, diagnostic.ErrMalformedLiteral)
}

func TestScalar_malformed(t *testing.T) {
	for _, src := range []string{
		"!!binary '***'",
		"!!float abc",
		"!native/object:Complex one",
		"!native/object:Rational x/y",
		"!native/object:BigDecimal nope",
		"!native/object:DateTime tomorrow",
	} {
		t.Run(src, func(t *testing.T) {
			err := loadErr(t, nil, src)
			require.ErrorIs(t, err, diagnostic.ErrMalformedLiteral)

			var located *diagnostic.Error
			require.ErrorAs(t, err, &located)
			assert.True(t, strings.HasPrefix(located.Position, "1:"), located.Position)
		})
	}
}

func TestScalar_classReference(t *testing.T) {
	reg := newRegistry(t)

	v, _ := load(t, reg, "!native/class Point")
	class, ok := v.(*registry.Class)
	require.True(t, ok)
	assert.Equal(t, "Point", class.Name)

	v, _ = load(t, reg, "!native/module ''")
	assert.Nil(t, v)

	err := loadErr(t, reg, "!native/class Pont")
	require.ErrorIs(t, err, diagnostic.ErrTypeResolution)

	var located *diagnostic.Error
	require.ErrorAs(t, err, &located)
	assert.Contains(t, located.Suggestions, "Point")
}

func TestScalar_recordNamespace(t *testing.T) {
	reg := registry.New()
	_, err := reg.Register(registry.RecordNamespace+"Pair", Point{})
	require.NoError(t, err)

	v, _ := load(t, reg, "!native/class Pair")
	class, ok := v.(*registry.Class)
	require.True(t, ok)
	assert.Equal(t, "Struct::Pair", class.Name)
}

func TestScalar_stringClass(t *testing.T) {
	reg := newRegistry(t)

	v, _ := load(t, reg, "!str:Title hello")
	title := Title("hello")
	assert.Equal(t, &title, v)

	v, _ = load(t, reg, "!native/string:Label hi")
	assert.Equal(t, &Label{Text: "hi"}, v)

	v, dec := load(t, reg, "!str:Unknown hello")
	assert.Equal(t, "hello", v)
	assert.Equal(t, 1, dec.Diagnostics().Count(diagnostic.CodeFallback))

	err := loadErr(t, reg, "!str:Point hello")
	require.ErrorIs(t, err, diagnostic.ErrUnsupportedExtension)
}

func TestScalar_loadTag(t *testing.T) {
	reg := newRegistry(t)

	v, _ := load(t, reg, "!temp 21.5C")
	assert.Equal(t, &Temperature{Degrees: 21.5, Unit: "C"}, v)

	// without a coder hook the instance stays as allocated
	v, _ = load(t, reg, "!gauge 7")
	assert.Equal(t, &Gauge{}, v)

	err := loadErr(t, reg, "!temp C")
	assert.Contains(t, err.Error(), "Temperature")
}

func TestScalar_anchoredScalarRegistersValue(t *testing.T) {
	n := node.Document(node.Sequence(
		node.Scalar("1..3").WithTag("!native/range").WithAnchor("r"),
		node.Alias("r"),
	))

	v, err := revive.NewDecoder(nil, options.Options{}).Decode(n)
	require.NoError(t, err)

	seq := v.(*value.Seq)
	assert.Equal(t, seq.At(0), seq.At(1))
	assert.Equal(t, value.Range{Begin: 1, End: 3}, seq.At(1))
}
