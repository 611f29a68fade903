package revive

import (
	"fmt"
	"math/big"

	"tag-reviver/diagnostic"
	"tag-reviver/node"
	"tag-reviver/options"
	"tag-reviver/registry"
	"tag-reviver/value"
)

// collectionHandler revives a struct/array/object/exception mapping given the class suffix of its tag.
type collectionHandler struct {
	family options.FamilyEnum
	revive func(d *Decoder, n *node.Node, suffix string) (any, error)
}

// collectionHandlers is keyed by prefix, or by "prefix:suffix" for the exact
// combinations that need their own handler.
func collectionHandlers() map[string]collectionHandler {
	return map[string]collectionHandler{
		prefixStruct:               {options.FamilyObject, (*Decoder).reviveStruct},
		prefixArray:                {options.FamilyObject, (*Decoder).reviveArray},
		prefixObject:               {options.FamilyObject, (*Decoder).reviveObject},
		prefixException:            {options.FamilyObject, (*Decoder).reviveException},
		prefixObject + ":Complex":  {options.FamilyNumeric, (*Decoder).reviveComplex},
		prefixObject + ":Rational": {options.FamilyNumeric, (*Decoder).reviveRational},
	}
}

func (d *Decoder) visitMapping(n *node.Node) (any, error) {
	tag := n.Tag

	if class, ok := d.snap.LoadTag(tag); ok {
		if err := d.permit(options.FamilyObject, "load tag "+tag); err != nil {
			return nil, err
		}

		return d.revive(n, class, class.New())
	}

	if tag == "" {
		return d.reviveHash(n, value.NewMap())
	}

	if prefix, suffix, ok := d.tags.collectionClass(tag); ok {
		h, ok := d.handlers[prefix+":"+suffix]
		if !ok {
			h = d.handlers[prefix]
		}

		if err := d.permit(h.family, tag); err != nil {
			return nil, err
		}

		return h.revive(d, n, suffix)
	}

	if name, ok := d.tags.stringClass(tag); ok {
		return d.reviveString(n, name)
	}

	switch {
	case d.tags.is(tag, "range"):
		if err := d.permit(options.FamilyRange, tag); err != nil {
			return nil, err
		}

		return d.reviveRange(n)

	case isSetTag(tag):
		return d.reviveSet(n)

	case isOmapTag(tag):
		return d.reviveOmap(n)
	}

	if name, ok := d.tags.hashClass(tag); ok {
		return d.reviveTypedHash(n, name)
	}

	return d.reviveHash(n, value.NewMap())
}

// reviveHash fills h from the pairs of n in document order, applying merge keys.
//
// A "<<" key whose value is an alias merges the aliased mapping; a sequence
// merges its mappings last to first so earlier ones win. Keys written
// directly in n always win over merged ones, wherever the merge appears;
// among merges the later one wins. Any other "<<" value is stored under the
// literal key.
func (d *Decoder) reviveHash(n *node.Node, h value.Hash) (value.Hash, error) {
	d.register(n, h)

	explicit := value.NewSet()

	err := n.Pairs(func(k, v *node.Node) error {
		seg := keySegment(k)

		key, err := d.acceptAt(k, seg)
		if err != nil {
			return err
		}

		if s, ok := key.(string); ok && s == mergeKey {
			switch v.Kind {
			case node.KindAlias:
				src, err := d.acceptAt(v, seg)
				if err != nil {
					return err
				}

				return merge(h, src, explicit)

			case node.KindSequence:
				src, err := d.acceptAt(v, seg)
				if err != nil {
					return err
				}

				list, ok := src.(*value.Seq)
				if !ok {
					return fmt.Errorf("%w: %T is not a sequence of mappings", diagnostic.ErrInvalidMerge, src)
				}

				for i := len(list.Items) - 1; i >= 0; i-- {
					if err := merge(h, list.Items[i], explicit); err != nil {
						return fmt.Errorf("element %d: %w", i, err)
					}
				}

				return nil
			}
		}

		val, err := d.acceptAt(v, seg)
		if err != nil {
			return err
		}

		h.Set(key, val)
		explicit.Add(key)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return h, nil
}

// merge copies the entries of src into dst, except keys in keep.
func merge(dst value.Hash, src any, keep *value.Set) error {
	h, ok := value.AsHash(src)
	if !ok {
		return fmt.Errorf("%w: %T is not a mapping", diagnostic.ErrInvalidMerge, src)
	}

	value.Merge(dst, h, keep)

	return nil
}

// fieldMap accepts every key and value of n into a map; later duplicates win.
func (d *Decoder) fieldMap(n *node.Node) (*value.Map, error) {
	fields := value.NewMap()

	err := n.Pairs(func(k, v *node.Node) error {
		seg := keySegment(k)

		key, err := d.acceptAt(k, seg)
		if err != nil {
			return err
		}

		val, err := d.acceptAt(v, seg)
		if err != nil {
			return err
		}

		fields.Set(key, val)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return fields, nil
}

// revive is the generic object path: register the instance, collect the
// fields, and hand them over through the extension protocol.
func (d *Decoder) revive(n *node.Node, class *registry.Class, instance any) (any, error) {
	d.register(n, instance)

	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	if err := d.initWith(n, class, instance, fields); err != nil {
		return nil, err
	}

	return instance, nil
}

func (d *Decoder) reviveStruct(n *node.Node, suffix string) (any, error) {
	class, err := d.snap.Resolve(suffix)
	if err != nil || class == nil {
		return d.reviveRecord(n, suffix)
	}

	instance := class.New()
	d.register(n, instance)

	members := value.NewMap()

	err = n.Pairs(func(k, v *node.Node) error {
		seg := keySegment(k)

		key, err := d.acceptAt(k, seg)
		if err != nil {
			return err
		}

		val, err := d.acceptAt(v, seg)
		if err != nil {
			return err
		}

		name := attributeName(fmt.Sprint(key))
		if class.Fields != nil {
			ok, err := class.Fields.Set(instance, name, val)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", class, name, err)
			}

			if ok {
				return nil
			}
		}

		members.Set(name, val)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := d.initWith(n, class, instance, members); err != nil {
		return nil, err
	}

	return instance, nil
}

// reviveRecord synthesizes a record type from the observed fields.
func (d *Decoder) reviveRecord(n *node.Node, name string) (any, error) {
	if name != "" {
		d.note(n, fmt.Sprintf("struct %q not registered, using an ad-hoc record", name))
	}

	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, fields.Len())
	vals := make([]any, 0, fields.Len())

	fields.Range(func(key, val any) bool {
		names = append(names, fmt.Sprint(key))
		vals = append(vals, val)

		return true
	})

	record, err := value.NewRecord(names, vals)
	if err != nil {
		return nil, err
	}

	return d.register(n, record), nil
}

// reviveArray reads the mapping form of a typed sequence: elements under
// "internal", attributes under "ivars".
func (d *Decoder) reviveArray(n *node.Node, suffix string) (any, error) {
	class, err := d.snap.Resolve(suffix)
	if err != nil {
		class = nil
	}

	var list any = value.NewSeq()
	if class != nil {
		list = class.New()
		if !isSequenceContainer(list) {
			return nil, fmt.Errorf("%w: %s is not a sequence container", diagnostic.ErrUnsupportedExtension, class)
		}
	} else if suffix != "" {
		d.note(n, fmt.Sprintf("sequence class %q not registered, using a plain sequence", suffix))
	}

	d.register(n, list)

	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	if internal, ok := fields.Get("internal"); ok && internal != nil {
		items, ok := internal.(*value.Seq)
		if !ok {
			return nil, fmt.Errorf("%w: internal is %T, want a sequence", diagnostic.ErrMalformedLiteral, internal)
		}

		for _, v := range items.Items {
			if err := push(list, v); err != nil {
				return nil, err
			}
		}
	}

	ivars, _ := fields.Get("ivars")

	attrs, ok := value.AsHash(ivars)
	if !ok {
		return list, nil
	}

	attrs.Range(func(key, val any) bool {
		name := attributeName(fmt.Sprint(key))

		if class == nil {
			d.warn(n, diagnostic.CodeDroppedAttribute, fmt.Sprintf("plain sequence has no attribute %q", name))
			return true
		}

		err = d.setAttribute(n, class, list, name, val)

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (d *Decoder) reviveObject(n *node.Node, suffix string) (any, error) {
	name := suffix
	if name == "" {
		name = "Object"
	}

	class, err := d.snap.Resolve(name)
	if err != nil || class == nil {
		if suffix != "" {
			d.note(n, fmt.Sprintf("class %q not registered, using a generic object", name))
		}

		return d.revive(n, nil, value.NewObject(name))
	}

	return d.revive(n, class, class.New())
}

func (d *Decoder) reviveException(n *node.Node, suffix string) (any, error) {
	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	msg, _ := fields.Get("message")
	fields.Delete("message")

	class, err := d.snap.Resolve(suffix)
	if err != nil || class == nil {
		name := suffix
		if name == "" {
			name = "Exception"
		} else {
			d.note(n, fmt.Sprintf("exception class %q not registered, using a generic exception", name))
		}

		e := value.NewException(name, text(msg))
		d.register(n, e)

		return e, d.initWith(n, nil, e, fields)
	}

	instance := class.New()
	d.register(n, instance)

	if msg != nil {
		if ms, ok := instance.(value.MessageSetter); ok {
			ms.SetMessage(text(msg))
		} else if err := d.setAttribute(n, class, instance, "message", text(msg)); err != nil {
			return nil, err
		}
	}

	if err := d.initWith(n, class, instance, fields); err != nil {
		return nil, err
	}

	return instance, nil
}

func (d *Decoder) reviveComplex(n *node.Node, _ string) (any, error) {
	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	re, _ := fields.Get("real")
	im, _ := fields.Get("image")

	r, ok := value.ToFloat(re)
	if !ok {
		return nil, fmt.Errorf("%w: complex real part %v", diagnostic.ErrMalformedLiteral, re)
	}

	i, ok := value.ToFloat(im)
	if !ok && im != nil {
		return nil, fmt.Errorf("%w: complex imaginary part %v", diagnostic.ErrMalformedLiteral, im)
	}

	return d.register(n, complex(r, i)), nil
}

func (d *Decoder) reviveRational(n *node.Node, _ string) (any, error) {
	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	num, _ := fields.Get("numerator")
	den, _ := fields.Get("denominator")

	if den == nil {
		den = 1
	}

	p, okP := value.ToRat(num)
	q, okQ := value.ToRat(den)

	if !okP || !okQ || q.Sign() == 0 {
		return nil, fmt.Errorf("%w: rational %v/%v", diagnostic.ErrMalformedLiteral, num, den)
	}

	return d.register(n, new(big.Rat).Quo(p, q)), nil
}

// reviveString reads the mapping form of a string: the text under "str",
// every other field an attribute.
func (d *Decoder) reviveString(n *node.Node, name string) (any, error) {
	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	str, _ := fields.Get("str")
	fields.Delete("str")

	if name != "" {
		if err := d.permit(options.FamilyObject, n.Tag); err != nil {
			return nil, err
		}

		class, err := d.snap.Resolve(name)
		if err == nil && class != nil {
			instance, err := newText(class, text(str))
			if err != nil {
				return nil, err
			}

			d.register(n, instance)

			return instance, d.initWith(n, class, instance, fields)
		}

		d.note(n, fmt.Sprintf("string class %q not registered, using a generic string", name))
	}

	if fields.Len() == 0 {
		return d.register(n, text(str)), nil
	}

	s := &value.String{ClassName: name, Text: text(str)}
	d.register(n, s)

	return s, d.initWith(n, nil, s, fields)
}

func (d *Decoder) reviveRange(n *node.Node) (any, error) {
	fields, err := d.fieldMap(n)
	if err != nil {
		return nil, err
	}

	begin, _ := fields.Get("begin")
	end, _ := fields.Get("end")
	excl, _ := fields.Get("excl")

	exclusive, _ := excl.(bool)

	return d.register(n, value.Range{Begin: begin, End: end, Exclusive: exclusive}), nil
}

// reviveSet collects the keys of n; values are visited but not kept.
func (d *Decoder) reviveSet(n *node.Node) (any, error) {
	set := value.NewSet()
	d.register(n, set)

	err := n.Pairs(func(k, v *node.Node) error {
		seg := keySegment(k)

		key, err := d.acceptAt(k, seg)
		if err != nil {
			return err
		}

		if _, err := d.acceptAt(v, seg); err != nil {
			return err
		}

		set.Add(key)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

func (d *Decoder) reviveOmap(n *node.Node) (any, error) {
	m := value.NewOmap()
	d.register(n, m)

	err := n.Pairs(func(k, v *node.Node) error {
		seg := keySegment(k)

		key, err := d.acceptAt(k, seg)
		if err != nil {
			return err
		}

		val, err := d.acceptAt(v, seg)
		if err != nil {
			return err
		}

		m.Set(key, val)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// reviveTypedHash allocates the named Hash class and fills it with the
// generic mapping rule.
func (d *Decoder) reviveTypedHash(n *node.Node, name string) (any, error) {
	if err := d.permit(options.FamilyObject, n.Tag); err != nil {
		return nil, err
	}

	class, err := d.snap.Resolve(name)
	if err != nil || class == nil {
		d.note(n, fmt.Sprintf("hash class %q not registered, using a plain map", name))
		return d.reviveHash(n, value.NewMap())
	}

	instance := class.New()

	h, ok := value.AsHash(instance)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not implement value.Hash", diagnostic.ErrUnsupportedExtension, class)
	}

	if _, err := d.reviveHash(n, h); err != nil {
		return nil, err
	}

	return instance, nil
}

// keySegment renders a mapping key for diagnostic paths.
func keySegment(k *node.Node) string {
	if k.Kind == node.KindScalar {
		return "." + k.Value
	}

	return "[" + k.String() + "]"
}

// text renders a field value as text; nil is empty.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
