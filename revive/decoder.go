package revive

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tag-reviver/anchor"
	"tag-reviver/diagnostic"
	"tag-reviver/internal/common"
	"tag-reviver/node"
	"tag-reviver/options"
	"tag-reviver/registry"
)

// Decoder revives node trees into native values.
//
// One Decoder runs one decode pass at a time and is not safe for concurrent
// use; decode documents in parallel with one Decoder per goroutine. The
// registry may keep changing between passes: each pass works on its own
// snapshot.
type Decoder struct {
	registry *registry.Registry
	opts     options.Options
	log      *slog.Logger
	tags     *tagSet
	handlers map[string]collectionHandler

	// per pass
	snap    *registry.Snapshot
	anchors *anchor.Table
	diags   diagnostic.Diagnostics
	path    []string
	depth   int
}

// NewDecoder creates a Decoder reading classes and domain types from reg,
// which may be nil.
func NewDecoder(reg *registry.Registry, opts options.Options) *Decoder {
	opts = opts.WithDefaults()

	return &Decoder{
		registry: reg,
		opts:     opts,
		log:      opts.Logger,
		tags:     newTagSet(opts.Namespace),
		handlers: collectionHandlers(),
		anchors:  anchor.NewTable(),
	}
}

// Options returns the effective options, defaults filled in.
func (d *Decoder) Options() options.Options {
	return d.opts
}

// Reset starts a new pass: it takes a fresh registry snapshot and forgets
// anchors, diagnostics, and position.
func (d *Decoder) Reset() {
	d.snap = d.registry.Snapshot()
	d.anchors.Reset()
	d.diags.Reset()
	d.path = d.path[:0]
	d.depth = 0
}

// Diagnostics returns the non-fatal diagnostics collected since the last Reset.
func (d *Decoder) Diagnostics() diagnostic.Diagnostics {
	return d.diags
}

// Decode revives n in a new pass. A Stream yields a []any with one value per
// document; any other node yields its own value.
func (d *Decoder) Decode(n *node.Node) (any, error) {
	d.Reset()

	return d.Accept(n)
}

// Load parses data and returns the value of its first document, or nil
// when data holds no document.
func (d *Decoder) Load(data []byte) (any, error) {
	docs, err := d.LoadStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	first, _ := common.First(docs)

	return first, nil
}

// LoadStream parses every document of r and returns their values in order.
func (d *Decoder) LoadStream(r io.Reader) ([]any, error) {
	stream, err := node.ParseReader(r)
	if err != nil {
		return nil, err
	}

	v, err := d.Decode(stream)
	if err != nil {
		return nil, err
	}

	docs, _ := v.([]any)

	return docs, nil
}

// Accept revives a single node within the current pass. Anchors registered by
// earlier Accept calls of the same pass stay visible.
//
// When the node is tagged and domain types are registered, the revived value
// is handed to the transform registered under the normalized tag, and its
// result replaces the value.
func (d *Decoder) Accept(n *node.Node) (any, error) {
	if d.snap == nil {
		d.snap = d.registry.Snapshot()
	}

	if n == nil {
		return nil, nil
	}

	d.depth++
	defer func() { d.depth-- }()

	if d.opts.MaxDepth >= 0 && d.depth > d.opts.MaxDepth {
		return nil, d.fail(n, fmt.Errorf("%w: nesting deeper than %d", diagnostic.ErrDepthExceeded, d.opts.MaxDepth))
	}

	raw, err := d.visit(n)
	if err != nil {
		return nil, d.fail(n, err)
	}

	if n.Tag == "" || !d.snap.HasDomainTypes() {
		return raw, nil
	}

	dt, ok := d.snap.DomainType(registry.NormalizeTag(n.Tag))
	if !ok {
		return raw, nil
	}

	v, err := dt.Transform(dt.Tag, raw)
	if err != nil {
		return nil, d.fail(n, fmt.Errorf("domain type %s: %w", dt.Tag, err))
	}

	return v, nil
}

func (d *Decoder) visit(n *node.Node) (any, error) {
	switch n.Kind {
	default:
		return nil, fmt.Errorf("%w: node kind %s", diagnostic.ErrUnsupportedExtension, n.Kind)
	case node.KindScalar:
		return d.visitScalar(n)
	case node.KindSequence:
		return d.visitSequence(n)
	case node.KindMapping:
		return d.visitMapping(n)
	case node.KindAlias:
		return d.visitAlias(n)
	case node.KindDocument:
		// anchors are document scoped
		d.anchors.Reset()
		return d.Accept(n.Root())
	case node.KindStream:
		docs := make([]any, 0, len(n.Children))
		for i, doc := range n.Children {
			v, err := d.acceptAt(doc, fmt.Sprintf("#%d", i))
			if err != nil {
				return nil, err
			}

			docs = append(docs, v)
		}

		return docs, nil
	}
}

func (d *Decoder) visitAlias(n *node.Node) (any, error) {
	if err := d.permit(options.FamilyAliases, "alias *"+n.Value); err != nil {
		return nil, err
	}

	v, ok := d.anchors.Lookup(n.Value)
	if !ok {
		return nil, fmt.Errorf("%w: %s", diagnostic.ErrUnknownAlias, n.Value)
	}

	return v, nil
}

// register records v under the anchor of n, if any.
func (d *Decoder) register(n *node.Node, v any) any {
	return d.anchors.Register(n.Anchor, v)
}

// acceptAt accepts n with seg appended to the current path.
func (d *Decoder) acceptAt(n *node.Node, seg string) (any, error) {
	d.path = append(d.path, seg)
	defer func() { d.path = d.path[:len(d.path)-1] }()

	return d.Accept(n)
}

// permit fails with ErrDisallowed unless family is enabled.
func (d *Decoder) permit(family options.FamilyEnum, what string) error {
	if d.opts.Families.Has(family) {
		return nil
	}

	return fmt.Errorf("%w: %s (family %s)", diagnostic.ErrDisallowed, what, family)
}

func (d *Decoder) locate(n *node.Node) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Tag:      n.Tag,
		Anchor:   n.Anchor,
		Path:     d.pathString(),
		Position: n.Position(),
	}
}

func (d *Decoder) pathString() string {
	return "$" + strings.Join(d.path, "")
}

func (d *Decoder) fail(n *node.Node, err error) error {
	return diagnostic.Wrap(err, d.locate(n))
}

// warn records a warning diagnostic for n.
func (d *Decoder) warn(n *node.Node, code, msg string) {
	diag := d.locate(n)
	diag.Code, diag.Message = code, msg
	d.diags.AddWarning(diag)

	d.log.Warn(msg, "code", code, "path", diag.Path, "tag", n.Tag)
}

// note records an info diagnostic for a fallback taken at n.
func (d *Decoder) note(n *node.Node, msg string) {
	diag := d.locate(n)
	diag.Code, diag.Message = diagnostic.CodeFallback, msg
	d.diags.AddInfo(diag)

	d.log.Debug(msg, "path", diag.Path, "tag", n.Tag)
}
