package revive

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"tag-reviver/coder"
	"tag-reviver/diagnostic"
	"tag-reviver/node"
	"tag-reviver/options"
	"tag-reviver/primitive"
	"tag-reviver/registry"
	"tag-reviver/value"
)

var (
	regexpLiteral  = regexp.MustCompile(`(?s)^/(.*)/([a-z]*)$`)
	rangeSeparator = regexp.MustCompile(`\.{2,3}`)
)

func (d *Decoder) visitScalar(n *node.Node) (any, error) {
	v, err := d.deserialize(n)
	if err != nil {
		return nil, err
	}

	return d.register(n, v), nil
}

func (d *Decoder) deserialize(n *node.Node) (any, error) {
	tag, text := n.Tag, n.Value

	if class, ok := d.snap.LoadTag(tag); ok {
		return d.loadScalar(class, n)
	}

	switch {
	case tag == "":
		if n.Quoted {
			return text, nil
		}

		return d.classify(text)

	case isBinaryTag(tag):
		b, err := base64.StdEncoding.DecodeString(stripSpace(text))
		if err != nil {
			return nil, malformed(text, "base64", err)
		}

		return b, nil

	case d.tags.is(tag, "object:BigDecimal"):
		if err := d.permit(options.FamilyNumeric, tag); err != nil {
			return nil, err
		}

		return parseBigDecimal(text)

	case d.tags.is(tag, "object:DateTime"):
		if err := d.permit(options.FamilyNumeric, tag); err != nil {
			return nil, err
		}

		t, err := primitive.ParseTime(text)
		if err != nil {
			return nil, malformed(text, "timestamp", err)
		}

		return t, nil

	case d.tags.is(tag, "object:Complex"):
		if err := d.permit(options.FamilyNumeric, tag); err != nil {
			return nil, err
		}

		c, err := strconv.ParseComplex(strings.TrimSpace(text), 128)
		if err != nil {
			return nil, malformed(text, "complex \"re+imi\"", err)
		}

		return c, nil

	case d.tags.is(tag, "object:Rational"):
		if err := d.permit(options.FamilyNumeric, tag); err != nil {
			return nil, err
		}

		r, ok := new(big.Rat).SetString(strings.TrimSpace(text))
		if !ok {
			return nil, malformed(text, "rational \"num/den\"", nil)
		}

		return r, nil

	case d.tags.is(tag, "class"), d.tags.is(tag, "module"):
		if err := d.permit(options.FamilyObject, tag); err != nil {
			return nil, err
		}

		class, err := d.snap.Resolve(text)
		if err != nil || class == nil {
			return nil, err
		}

		return class, nil

	case isFloatTag(tag):
		v, err := d.classify(text)
		if err != nil {
			return nil, err
		}

		f, ok := value.ToFloat(v)
		if !ok {
			return nil, malformed(text, "float", nil)
		}

		return f, nil

	case d.tags.is(tag, "regexp"):
		if err := d.permit(options.FamilyRegexp, tag); err != nil {
			return nil, err
		}

		return parseRegexp(text)

	case d.tags.is(tag, "range"):
		if err := d.permit(options.FamilyRange, tag); err != nil {
			return nil, err
		}

		return d.parseRange(n)

	case d.tags.isSymbol(tag):
		if err := d.permit(options.FamilySymbol, tag); err != nil {
			return nil, err
		}

		return value.Symbol(text), nil
	}

	if name, ok := d.tags.stringClass(tag); ok {
		return d.stringScalar(n, name)
	}

	if n.Quoted {
		return text, nil
	}

	return d.classify(text)
}

// classify runs the scanner over untagged plain text.
func (d *Decoder) classify(text string) (any, error) {
	v := d.opts.Scanner.Classify(text)

	if sym, ok := v.(value.Symbol); ok {
		if err := d.permit(options.FamilySymbol, "symbol "+sym.String()); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// loadScalar allocates a load-tag class and hands it the scalar text.
func (d *Decoder) loadScalar(class *registry.Class, n *node.Node) (any, error) {
	if err := d.permit(options.FamilyObject, "load tag "+n.Tag); err != nil {
		return nil, err
	}

	instance := class.New()
	if class.Capability != coder.CapabilityCoder {
		return instance, nil
	}

	init, ok := instance.(coder.Initializer)
	if !ok {
		return nil, unsupported(class, instance)
	}

	if err := init.InitWith(coder.NewScalar(n.Tag, n.Value)); err != nil {
		return nil, fmt.Errorf("%s: %w", class, err)
	}

	return instance, nil
}

// stringScalar revives a string tag, wrapping the text in the named class
// when it resolves.
func (d *Decoder) stringScalar(n *node.Node, name string) (any, error) {
	if name == "" {
		return n.Value, nil
	}

	if err := d.permit(options.FamilyObject, n.Tag); err != nil {
		return nil, err
	}

	class, err := d.snap.Resolve(name)
	if err != nil {
		d.note(n, fmt.Sprintf("string class %s not registered, using plain text", name))
		return n.Value, nil
	}

	return newText(class, n.Value)
}

// newText allocates a string class instance holding text.
func newText(class *registry.Class, text string) (any, error) {
	instance := class.New()

	if ts, ok := instance.(value.TextSetter); ok {
		ts.SetText(text)
		return instance, nil
	}

	rv := reflect.ValueOf(instance)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.String {
		rv.Elem().SetString(text)
		return instance, nil
	}

	return nil, unsupported(class, instance)
}

// parseBigDecimal reads "digits" or the "precision:digits" dump form.
func parseBigDecimal(text string) (*big.Float, error) {
	digits := strings.TrimSpace(text)
	if _, after, ok := strings.Cut(digits, ":"); ok {
		digits = after
	}

	prec := uint(len(digits))*4 + 64

	f, _, err := big.ParseFloat(digits, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, malformed(text, "decimal", err)
	}

	return f, nil
}

// parseRegexp reads "/source/flags". Letters other than the flag letters are
// kept as the language qualifier.
func parseRegexp(text string) (*value.Regexp, error) {
	m := regexpLiteral.FindStringSubmatch(text)
	if m == nil {
		return nil, malformed(text, "/pattern/flags", nil)
	}

	source, letters := m[1], m[2]

	var (
		flags value.RegexpFlag
		lang  string
	)

	for i := 0; i < len(letters); i++ {
		if fl, ok := value.RegexpFlagFromLetter(letters[i]); ok {
			flags |= fl
			continue
		}

		lang = letters[i : i+1]
	}

	re, err := value.CompileRegexp(source, flags, lang)
	if err != nil {
		return nil, malformed(text, "regular expression", err)
	}

	return re, nil
}

// parseRange splits "a..b" or "a...b" and revives both endpoints as plain scalars.
func (d *Decoder) parseRange(n *node.Node) (value.Range, error) {
	loc := rangeSeparator.FindStringIndex(n.Value)
	if loc == nil {
		return value.Range{}, malformed(n.Value, "a..b or a...b", nil)
	}

	begin, err := d.acceptAt(node.Scalar(n.Value[:loc[0]]), ".begin")
	if err != nil {
		return value.Range{}, err
	}

	end, err := d.acceptAt(node.Scalar(n.Value[loc[1]:]), ".end")
	if err != nil {
		return value.Range{}, err
	}

	return value.Range{Begin: begin, End: end, Exclusive: loc[1]-loc[0] == 3}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}

		return r
	}, s)
}

func malformed(text, grammar string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid %s: %w", diagnostic.ErrMalformedLiteral, text, grammar, err)
	}

	return fmt.Errorf("%w: %q is not a valid %s", diagnostic.ErrMalformedLiteral, text, grammar)
}

func unsupported(class *registry.Class, instance any) error {
	return fmt.Errorf("%w: %s instance %T takes neither a coder nor attributes",
		diagnostic.ErrUnsupportedExtension, class, instance)
}
