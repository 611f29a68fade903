package revive_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"tag-reviver/coder"
	"tag-reviver/options"
	"tag-reviver/registry"
	"tag-reviver/revive"
	"tag-reviver/value"
)

type Point struct {
	X, Y int
}

type Person struct {
	Name string
	Age  int
}

// Temperature builds itself from every coder form.
type Temperature struct {
	Degrees float64
	Unit    string
}

func (t *Temperature) InitWith(c *coder.Coder) error {
	switch c.Form {
	case coder.FormScalar:
		text := strings.TrimSpace(c.Scalar)
		unit := text[len(text)-1:]

		deg, err := strconv.ParseFloat(text[:len(text)-1], 64)
		if err != nil {
			return err
		}

		t.Degrees, t.Unit = deg, unit

	case coder.FormSequence:
		if len(c.Seq) != 2 {
			return errors.New("want [degrees, unit]")
		}

		t.Degrees, _ = value.ToFloat(c.Seq[0])
		t.Unit, _ = c.Seq[1].(string)

	case coder.FormMap:
		v, _ := c.Field("degrees")
		t.Degrees, _ = value.ToFloat(v)
		t.Unit = c.String("unit")
	}

	return nil
}

// Gauge only has the deprecated hook.
type Gauge struct {
	Tag   string
	Level int
}

func (g *Gauge) YAMLInitialize(tag string, fields *value.Map) error {
	g.Tag = tag

	v, _ := fields.Get("level")
	g.Level, _ = v.(int)

	return nil
}

// Tags is a slice-kinded sequence class.
type Tags []string

// Stack is a Pusher sequence class that also keeps attributes.
type Stack struct {
	Items []any
	Name  string
}

func (s *Stack) Push(v any) error {
	s.Items = append(s.Items, v)
	return nil
}

// Inventory is a Hash class.
type Inventory struct {
	value.Map
}

type Title string

// Label is a string class with extra fields.
type Label struct {
	Text string
	Lang string
}

func (l *Label) SetText(text string) { l.Text = text }

type NotFound struct {
	Message string
	Code    int
}

func (e *NotFound) Error() string { return e.Message }

// Meter has numeric fields of narrow kinds.
type Meter struct {
	Small int8
	Count uint
	N     int
	Table map[any]any
}

// Bag keeps unknown attributes.
type Bag struct {
	Size  int
	Extra map[string]any
}

func (b *Bag) SetAttribute(name string, v any) error {
	if b.Extra == nil {
		b.Extra = make(map[string]any)
	}

	b.Extra[name] = v

	return nil
}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()

	for _, c := range []struct {
		name   string
		sample any
	}{
		{"Point", Point{}},
		{"Person", Person{}},
		{"Temperature", Temperature{}},
		{"Gauge", Gauge{}},
		{"Tags", Tags{}},
		{"Stack", Stack{}},
		{"Inventory", Inventory{}},
		{"Title", Title("")},
		{"Label", Label{}},
		{"NotFound", NotFound{}},
		{"Bag", Bag{}},
		{"Meter", Meter{}},
	} {
		_, err := reg.Register(c.name, c.sample)
		require.NoError(t, err)
	}

	require.NoError(t, reg.LoadTag("!temp", "Temperature"))
	require.NoError(t, reg.LoadTag("!gauge", "Gauge"))

	return reg
}

// load decodes the first document of src.
func load(t *testing.T, reg *registry.Registry, src string, opts ...options.Options) (any, *revive.Decoder) {
	t.Helper()

	var o options.Options
	if len(opts) > 0 {
		o = opts[0]
	}

	dec := revive.NewDecoder(reg, o)

	v, err := dec.Load([]byte(src))
	require.NoError(t, err, "decoding:\n%s", src)

	return v, dec
}

// loadErr decodes src and returns the error.
func loadErr(t *testing.T, reg *registry.Registry, src string, opts ...options.Options) error {
	t.Helper()

	var o options.Options
	if len(opts) > 0 {
		o = opts[0]
	}

	v, err := revive.NewDecoder(reg, o).Load([]byte(src))
	require.Error(t, err, "decoded to %s", spew.Sdump(v))

	return err
}

func get(t *testing.T, v any, key any) any {
	t.Helper()

	h, ok := value.AsHash(v)
	require.True(t, ok, "%T is not a mapping", v)

	got, ok := h.Get(key)
	require.True(t, ok, "missing key %v", key)

	return got
}
