package construct

import (
	"github.com/treeform-format/go-treeform/debug"
	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/typereg"
	"github.com/treeform-format/go-treeform/value"
)

// maxDepth bounds construction recursion so adversarially deep node
// trees fail with ErrDepth instead of exhausting the stack.
const maxDepth = 10000

// pendingRef marks a node currently under construction. It never
// escapes the package: containers built here absorb it via Defer, and
// Document rejects it at the root.
type pendingRef struct {
	node *ir.Node
}

func isPending(v any) bool {
	_, ok := v.(*pendingRef)
	return ok
}

// Builder runs tag-driven construction of decoded values from node
// trees. A Builder serves one document at a time; concurrent decodes
// need one Builder each, sharing a Registry freely.
type Builder struct {
	reg   *Registry
	types typereg.Types
	utc   bool

	pending map[*ir.Node][]func(any)
	prov    map[*value.Map][]provSlot
	fixErr  error
	depth   int
}

// provSlot marks a mapping entry whose final value is still deferred.
// Merge layering consults these so a provisional slot is never copied
// into another mapping as permanent data.
type provSlot struct {
	key any
	ref *pendingRef
}

type Option func(*Builder)

// WithTypes supplies the external type registry consulted by the
// parametrized seq:/map:/object: decoders.
func WithTypes(t typereg.Types) Option {
	return func(b *Builder) { b.types = t }
}

// WithUTCTimestamps switches the timestamp decoders from the faithful
// local-offset policy to UTC normalization.
func WithUTCTimestamps() Option {
	return func(b *Builder) { b.utc = true }
}

// NewBuilder returns a Builder dispatching through reg; a nil reg
// means the process-wide default registry.
func NewBuilder(reg *Registry, opts ...Option) *Builder {
	if reg == nil {
		reg = Default()
	}
	b := &Builder{reg: reg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Document runs one full decode of root with a fresh fixup table. On
// success every placeholder handed out during recursion has been
// resolved; leftovers indicate a defective decoder and surface as
// ErrInternal.
func (b *Builder) Document(root *ir.Node) (any, error) {
	b.pending = map[*ir.Node][]func(any){}
	b.prov = nil
	b.fixErr = nil
	b.depth = 0
	defer func() { b.pending = nil }()

	v, err := b.Construct(root)
	if err != nil {
		return nil, err
	}
	if b.fixErr != nil {
		return nil, b.fixErr
	}
	if isPending(v) {
		return nil, errf("", ErrInternal, "document root resolved to a placeholder")
	}
	if n := len(b.pending); n != 0 {
		return nil, errf("", ErrInternal, "%d unresolved node(s) after decode", n)
	}
	return v, nil
}

// Construct decodes one node, dispatching through the registry. The
// result may be a placeholder when node is an ancestor currently under
// construction; container decoders must pass such a value to Defer
// rather than storing it.
func (b *Builder) Construct(node *ir.Node) (any, error) {
	if node == nil {
		node = ir.Null()
	}
	if b.pending == nil {
		// direct Construct use outside Document
		b.pending = map[*ir.Node][]func(any){}
	}
	if _, open := b.pending[node]; open {
		if debug.Construct() {
			debug.Logf("construct: link to in-progress node tag=%q\n", node.Tag)
		}
		return &pendingRef{node: node}, nil
	}
	if b.depth >= maxDepth {
		return nil, errf(node.Tag, ErrDepth, "depth %d", b.depth)
	}
	b.depth++
	defer func() { b.depth-- }()

	b.pending[node] = nil
	v, err := b.dispatch(node)
	if err != nil {
		delete(b.pending, node)
		return nil, err
	}
	fixes := b.pending[node]
	delete(b.pending, node)
	if len(fixes) != 0 && debug.Fixup() {
		debug.Logf("fixup: resolving %d deferred slot(s) for tag=%q\n",
			len(fixes), node.Tag)
	}
	for _, fix := range fixes {
		fix(v)
	}
	return v, nil
}

// Defer registers fix to run with the resolved value once the node v
// links to finishes construction. It reports whether v was a
// placeholder; when false, fix is not retained and the caller should
// just use v.
func (b *Builder) Defer(v any, fix func(resolved any)) bool {
	ref, ok := v.(*pendingRef)
	if !ok {
		return false
	}
	b.pending[ref.node] = append(b.pending[ref.node], fix)
	return true
}

// deferErr records a failure raised inside a fixup, where there is no
// error return to propagate through. Document surfaces the first one
// after the top-level construct finishes.
func (b *Builder) deferErr(err error) {
	if b.fixErr == nil {
		b.fixErr = err
	}
}

// setEntry stores v under key on m, deferring the write when v is a
// placeholder. Overwriting a key cancels any provisional slot bound to
// it, so the newest layer wins even against a later-firing patch.
func (b *Builder) setEntry(m *value.Map, key, v any) {
	b.clearProv(m, key)
	ref, ok := v.(*pendingRef)
	if !ok {
		m.Set(key, v)
		return
	}
	b.markProv(m, key, ref)
	b.Defer(ref, func(r any) {
		if b.clearProv(m, key) {
			m.Set(key, r)
		}
	})
	m.Set(key, nil)
}

func (b *Builder) markProv(m *value.Map, key any, ref *pendingRef) {
	if b.prov == nil {
		b.prov = map[*value.Map][]provSlot{}
	}
	b.prov[m] = append(b.prov[m], provSlot{key: key, ref: ref})
}

func (b *Builder) clearProv(m *value.Map, key any) bool {
	slots := b.prov[m]
	for i := range slots {
		if value.Equal(slots[i].key, key) {
			b.prov[m] = append(slots[:i], slots[i+1:]...)
			if len(b.prov[m]) == 0 {
				delete(b.prov, m)
			}
			return true
		}
	}
	return false
}

func (b *Builder) provRef(m *value.Map, key any) (*pendingRef, bool) {
	for _, s := range b.prov[m] {
		if value.Equal(s.key, key) {
			return s.ref, true
		}
	}
	return nil, false
}

func (b *Builder) dispatch(node *ir.Node) (any, error) {
	if f, ok := b.reg.resolveExact(node.Tag); ok {
		if debug.Construct() {
			debug.Logf("construct: exact tag=%q kind=%s\n", node.Tag, node.Kind)
		}
		return f(b, node)
	}
	if f, suffix, ok := b.reg.resolvePrefix(node.Tag); ok {
		if debug.Construct() {
			debug.Logf("construct: prefix tag=%q suffix=%q\n", node.Tag, suffix)
		}
		return f(b, suffix, node)
	}
	prefixAny, exactAny := b.reg.fallback()
	if prefixAny != nil {
		return prefixAny(b, node.Tag, node)
	}
	if exactAny != nil {
		return exactAny(b, node)
	}
	return b.primitive(node)
}

// primitive is the tag-less construction of last resort.
func (b *Builder) primitive(node *ir.Node) (any, error) {
	switch node.Kind {
	case ir.ScalarKind:
		return scalarValue(node.Value, node.Style), nil
	case ir.SequenceKind:
		return b.Sequence(node)
	case ir.MappingKind:
		return b.Mapping(node)
	default:
		return nil, errf(node.Tag, ErrUnrecognizedTag,
			"no decoder and node kind %d is not constructible", int(node.Kind))
	}
}
