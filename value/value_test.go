package value_test

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag-reviver/value"
)

func TestRangeContains(t *testing.T) {
	inclusive := value.Range{Begin: 1, End: 5}
	exclusive := value.Range{Begin: 1, End: 5, Exclusive: true}

	assert.True(t, inclusive.Contains(5))
	assert.False(t, exclusive.Contains(5))
	assert.True(t, exclusive.Contains(4))
	assert.True(t, exclusive.Contains(4.5))
	assert.False(t, inclusive.Contains(0))
	assert.False(t, inclusive.Contains("3"))

	assert.Equal(t, "1..5", inclusive.String())
	assert.Equal(t, "1...5", exclusive.String())

	endless := value.Range{Begin: 1}
	assert.True(t, endless.Contains(1_000_000))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, ":foo", value.Symbol("foo").String())
	assert.NotEqual(t, any("foo"), any(value.Symbol("foo")))
}

func TestRegexp(t *testing.T) {
	re, err := value.CompileRegexp("ab", value.RegexpIgnoreCase, "")
	require.NoError(t, err)

	ok, err := re.MatchString("xABy")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/ab/i", re.String())

	dot, err := value.CompileRegexp("a.b", value.RegexpMultiline, "")
	require.NoError(t, err)

	ok, err = dot.MatchString("a\nb")
	require.NoError(t, err)
	assert.True(t, ok)

	ext, err := value.CompileRegexp("a b # comment", value.RegexpExtended|value.RegexpNoEncoding, "u")
	require.NoError(t, err)

	ok, err = ext.MatchString("ab")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/a b # comment/xnu", ext.String())

	_, err = value.CompileRegexp("(", value.RegexpNone, "")
	assert.Error(t, err)
}

func TestRegexpFlagFromLetter(t *testing.T) {
	for letter, want := range map[byte]value.RegexpFlag{
		'i': value.RegexpIgnoreCase,
		'x': value.RegexpExtended,
		'm': value.RegexpMultiline,
		'n': value.RegexpNoEncoding,
	} {
		got, ok := value.RegexpFlagFromLetter(letter)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := value.RegexpFlagFromLetter('u')
	assert.False(t, ok)
}

func TestRecord(t *testing.T) {
	rec, err := value.NewRecord(
		[]string{"first_name", "@age", "first-name", "1st", "名前"},
		[]any{"Ada", 36, "dup", nil, "x"},
	)
	require.NoError(t, err)

	rt := reflect.TypeOf(rec).Elem()
	require.Equal(t, 5, rt.NumField())

	var names []string
	for i := 0; i < rt.NumField(); i++ {
		names = append(names, rt.Field(i).Name)
	}
	assert.Equal(t, []string{"FirstName", "Age", "FirstName1", "Field1st", "Field名前"}, names)

	v, ok := value.RecordField(rec, "@age")
	require.True(t, ok)
	assert.Equal(t, 36, v)

	v, ok = value.RecordField(rec, "1st")
	require.True(t, ok)
	assert.Nil(t, v)

	_, ok = value.RecordField(rec, "missing")
	assert.False(t, ok)

	_, err = value.NewRecord([]string{"a"}, nil)
	assert.ErrorIs(t, err, value.ErrRecordShape)
}

func TestObjectAttributes(t *testing.T) {
	obj := value.NewObject("Point")
	require.NoError(t, obj.SetAttribute("x", 1))

	v, ok := obj.Attribute("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	var empty value.Object
	_, ok = empty.Attribute("x")
	assert.False(t, ok)
}

func TestException(t *testing.T) {
	e := value.NewException("ArgumentError", "bad")
	assert.EqualError(t, e, "ArgumentError: bad")

	e.SetMessage("worse")
	assert.EqualError(t, e, "ArgumentError: worse")
}

func TestNumberConversions(t *testing.T) {
	f, ok := value.ToFloat(big.NewInt(3))
	assert.True(t, ok)
	assert.InDelta(t, 3.0, f, 0)

	_, ok = value.ToFloat("3")
	assert.False(t, ok)

	r, ok := value.ToRat(0.5)
	require.True(t, ok)
	assert.Equal(t, "1/2", r.String())

	i, ok := value.ToBigInt(int64(7))
	require.True(t, ok)
	assert.Equal(t, "7", i.String())
}
