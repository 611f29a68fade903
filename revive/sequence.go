package revive

import (
	"fmt"
	"reflect"

	"tag-reviver/coder"
	"tag-reviver/diagnostic"
	"tag-reviver/node"
	"tag-reviver/options"
	"tag-reviver/registry"
	"tag-reviver/value"
)

func (d *Decoder) visitSequence(n *node.Node) (any, error) {
	if class, ok := d.snap.LoadTag(n.Tag); ok {
		return d.loadSequence(class, n)
	}

	if isOmapTag(n.Tag) {
		return d.omapFromSequence(n)
	}

	if name, ok := d.tags.arrayClass(n.Tag); ok {
		return d.typedSequence(n, name)
	}

	return d.plainSequence(n)
}

// plainSequence builds a *value.Seq, registered before its children so they
// may alias it.
func (d *Decoder) plainSequence(n *node.Node) (*value.Seq, error) {
	list := value.NewSeq()
	d.register(n, list)

	for i, c := range n.Children {
		v, err := d.acceptAt(c, index(i))
		if err != nil {
			return nil, err
		}

		list.Items = append(list.Items, v)
	}

	return list, nil
}

func (d *Decoder) acceptChildren(n *node.Node) ([]any, error) {
	items := make([]any, 0, len(n.Children))

	for i, c := range n.Children {
		v, err := d.acceptAt(c, index(i))
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}

	return items, nil
}

// loadSequence revives a load-tag class from the sequence form.
func (d *Decoder) loadSequence(class *registry.Class, n *node.Node) (any, error) {
	if err := d.permit(options.FamilyObject, "load tag "+n.Tag); err != nil {
		return nil, err
	}

	instance := class.New()
	d.register(n, instance)

	items, err := d.acceptChildren(n)
	if err != nil {
		return nil, err
	}

	if class.Capability == coder.CapabilityCoder {
		init, ok := instance.(coder.Initializer)
		if !ok {
			return nil, unsupported(class, instance)
		}

		if err := init.InitWith(coder.NewSeq(n.Tag, items)); err != nil {
			return nil, fmt.Errorf("%s: %w", class, err)
		}

		return instance, nil
	}

	if !isSequenceContainer(instance) {
		d.note(n, fmt.Sprintf("%s takes no sequence payload, left as allocated", class))
		return instance, nil
	}

	for _, v := range items {
		if err := push(instance, v); err != nil {
			return nil, err
		}
	}

	return instance, nil
}

// omapFromSequence builds an ordered map from a sequence of single-entry mappings.
func (d *Decoder) omapFromSequence(n *node.Node) (*value.Omap, error) {
	m := value.NewOmap()
	d.register(n, m)

	for i, c := range n.Children {
		if c.Kind != node.KindMapping || len(c.Children) < 2 {
			return nil, fmt.Errorf("%w: omap entry %d is %s, want a single-entry mapping",
				diagnostic.ErrMalformedLiteral, i, c)
		}

		seg := index(i)

		key, err := d.acceptAt(c.Children[0], seg)
		if err != nil {
			return nil, err
		}

		val, err := d.acceptAt(c.Children[len(c.Children)-1], seg+keySegment(c.Children[0]))
		if err != nil {
			return nil, err
		}

		m.Set(key, val)
	}

	return m, nil
}

// typedSequence allocates the named container class and pushes every child.
// An unresolvable class falls back to a plain sequence.
func (d *Decoder) typedSequence(n *node.Node, name string) (any, error) {
	if err := d.permit(options.FamilyObject, n.Tag); err != nil {
		return nil, err
	}

	class, err := d.snap.Resolve(name)
	if err != nil || class == nil {
		d.note(n, fmt.Sprintf("sequence class %q not registered, using a plain sequence", name))
		return d.plainSequence(n)
	}

	list := class.New()
	if !isSequenceContainer(list) {
		return nil, fmt.Errorf("%w: %s is not a sequence container", diagnostic.ErrUnsupportedExtension, class)
	}

	d.register(n, list)

	for i, c := range n.Children {
		v, err := d.acceptAt(c, index(i))
		if err != nil {
			return nil, err
		}

		if err := push(list, v); err != nil {
			return nil, err
		}
	}

	return list, nil
}

func isSequenceContainer(v any) bool {
	if _, ok := v.(value.Pusher); ok {
		return true
	}

	t := reflect.TypeOf(v)

	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Slice
}

func index(i int) string {
	return fmt.Sprintf("[%d]", i)
}
