package node

import (
	"errors"
	"fmt"
)

var ErrOddMapping = errors.New("mapping node has an odd number of children")

// Node is one element of a parsed document tree.
//
// The meaning of Value and Children depends on Kind:
//   - KindScalar: Value is the scalar text, Quoted is set for any non-plain style
//   - KindSequence: Children are the elements
//   - KindMapping: Children are flat, interleaved key/value pairs in document order
//   - KindAlias: Value is the referenced anchor name
//   - KindDocument: Children holds exactly one root node
//   - KindStream: Children are documents
type Node struct {
	Kind     KindEnum
	Tag      string
	Anchor   string
	Value    string
	Quoted   bool
	Children []*Node

	// Line and Column are 1-based positions reported by the parser, zero when unknown.
	Line, Column int
}

func Scalar(text string) *Node {
	return &Node{Kind: KindScalar, Value: text}
}

func QuotedScalar(text string) *Node {
	return &Node{Kind: KindScalar, Value: text, Quoted: true}
}

func Sequence(children ...*Node) *Node {
	return &Node{Kind: KindSequence, Children: children}
}

// Mapping builds a mapping from interleaved key/value children.
func Mapping(keyValues ...*Node) *Node {
	return &Node{Kind: KindMapping, Children: keyValues}
}

func Alias(anchor string) *Node {
	return &Node{Kind: KindAlias, Value: anchor}
}

func Document(root *Node) *Node {
	return &Node{Kind: KindDocument, Children: []*Node{root}}
}

func Stream(documents ...*Node) *Node {
	return &Node{Kind: KindStream, Children: documents}
}

// WithTag sets the tag and returns the same node for chaining.
func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

// WithAnchor sets the anchor and returns the same node for chaining.
func (n *Node) WithAnchor(anchor string) *Node {
	n.Anchor = anchor
	return n
}

// Root returns the single child of a document node.
func (n *Node) Root() *Node {
	if n.Kind != KindDocument || len(n.Children) == 0 {
		return nil
	}

	return n.Children[0]
}

// Pairs calls fn for every key/value pair of a mapping node in document order.
// Iteration stops at the first error returned by fn.
func (n *Node) Pairs(fn func(key, val *Node) error) error {
	if len(n.Children)%2 != 0 {
		return fmt.Errorf("%w: %d children", ErrOddMapping, len(n.Children))
	}

	for i := 0; i < len(n.Children); i += 2 {
		if err := fn(n.Children[i], n.Children[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// Position renders the node location as "line:column", or an empty string when unknown.
func (n *Node) Position() string {
	if n.Line == 0 {
		return ""
	}

	return fmt.Sprintf("%d:%d", n.Line, n.Column)
}

func (n *Node) String() string {
	switch n.Kind {
	case KindScalar:
		return fmt.Sprintf("%s(%q)", n.Kind, n.Value)
	case KindAlias:
		return fmt.Sprintf("%s(*%s)", n.Kind, n.Value)
	default:
		return fmt.Sprintf("%s[%d]", n.Kind, len(n.Children))
	}
}
