package node

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedYAMLKind = errors.New("unsupported yaml node kind")

const quotedStyles = yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle | yaml.LiteralStyle | yaml.FoldedStyle

// FromYAML converts a yaml.v3 node tree into a Node tree.
//
// Only explicit tags are carried over: yaml.v3 fills Tag with the implicitly
// resolved tag for every node, which must not leak into tag dispatch.
func FromYAML(yn *yaml.Node) (*Node, error) {
	if yn == nil {
		return nil, nil
	}

	out := &Node{
		Anchor: yn.Anchor,
		Line:   yn.Line,
		Column: yn.Column,
	}

	if yn.Style&yaml.TaggedStyle != 0 {
		out.Tag = yn.LongTag()
	}

	switch yn.Kind {
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedYAMLKind, yn.Kind)

	case yaml.ScalarNode:
		out.Kind = KindScalar
		out.Value = yn.Value
		out.Quoted = yn.Style&quotedStyles != 0
		return out, nil

	case yaml.AliasNode:
		out.Kind = KindAlias
		out.Value = yn.Value
		return out, nil

	case yaml.DocumentNode:
		out.Kind = KindDocument

	case yaml.SequenceNode:
		out.Kind = KindSequence

	case yaml.MappingNode:
		out.Kind = KindMapping
	}

	out.Children = make([]*Node, 0, len(yn.Content))
	for _, c := range yn.Content {
		child, err := FromYAML(c)
		if err != nil {
			return nil, err
		}

		out.Children = append(out.Children, child)
	}

	return out, nil
}

// Parse parses every YAML document in data and returns them as a stream node.
func Parse(data []byte) (*Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses every YAML document read from r and returns them as a stream node.
func ParseReader(r io.Reader) (*Node, error) {
	dec := yaml.NewDecoder(r)
	stream := Stream()

	for {
		var doc yaml.Node

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse document %d: %w", len(stream.Children), err)
		}

		n, err := FromYAML(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert document %d: %w", len(stream.Children), err)
		}

		stream.Children = append(stream.Children, n)
	}

	return stream, nil
}
