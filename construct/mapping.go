package construct

import (
	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/value"
)

// Sequence constructs the elements of a sequence node in order.
// Elements linking back to a node under construction get a
// provisional nil slot patched in place once the target resolves.
func (b *Builder) Sequence(node *ir.Node) ([]any, error) {
	if node.Kind != ir.SequenceKind {
		return nil, errf(node.Tag, ErrUnexpectedKind,
			"expected sequence, got %s", node.Kind)
	}
	res := make([]any, len(node.Children))
	for i, c := range node.Children {
		v, err := b.Construct(c)
		if err != nil {
			return nil, err
		}
		if b.Defer(v, func(r any) { res[i] = r }) {
			continue
		}
		res[i] = v
	}
	return res, nil
}

type ownEntry struct {
	key any
	val any
}

// Mapping constructs a mapping node, honoring merge and value key
// directives. With a merge present the result is rebuilt by layering
// the merged-in mappings in priority order and the node's own entries
// last, so own entries win key-for-key.
func (b *Builder) Mapping(node *ir.Node) (*value.Map, error) {
	if node.Kind != ir.MappingKind {
		return nil, errf(node.Tag, ErrUnexpectedKind,
			"expected mapping, got %s", node.Kind)
	}
	var (
		mergeSrcs []*value.Map
		mergeSeen bool
		valueSeen bool
		owns      []ownEntry
	)
	for i := range node.Keys {
		keyNode, valNode := node.Keys[i], node.Values[i]
		switch keyNode.Tag {
		case ir.MergeTag:
			if mergeSeen {
				return nil, errf(node.Tag, ErrDuplicateMergeKey, "")
			}
			mergeSeen = true
			srcs, err := b.mergeSources(node, valNode)
			if err != nil {
				return nil, err
			}
			mergeSrcs = srcs
		case ir.ValueTag:
			if valueSeen {
				return nil, errf(node.Tag, ErrDuplicateValueKey, "")
			}
			valueSeen = true
			v, err := b.Construct(valNode)
			if err != nil {
				return nil, err
			}
			owns = append(owns, ownEntry{key: "=", val: v})
		default:
			k, err := b.Construct(keyNode)
			if err != nil {
				return nil, err
			}
			if isPending(k) {
				return nil, errf(node.Tag, ErrUnexpectedKind,
					"mapping key refers back to an enclosing node")
			}
			v, err := b.Construct(valNode)
			if err != nil {
				return nil, err
			}
			owns = append(owns, ownEntry{key: k, val: v})
		}
	}

	res := value.NewMap()
	for _, src := range mergeSrcs {
		for _, e := range src.Entries() {
			// a source entry still awaiting its own fixup must be
			// re-deferred here, not copied as permanent nil
			if ref, ok := b.provRef(src, e.Key); ok {
				b.setEntry(res, e.Key, ref)
				continue
			}
			b.setEntry(res, e.Key, e.Val)
		}
	}
	for _, e := range owns {
		b.setEntry(res, e.key, e.val)
	}
	return res, nil
}

// mergeSources decodes a merge directive's value into source mappings
// in layering order. A sequence of mappings is collected in reverse so
// earlier sequence entries end up with the highest priority.
func (b *Builder) mergeSources(parent, valNode *ir.Node) ([]*value.Map, error) {
	switch valNode.Kind {
	case ir.MappingKind:
		m, err := b.mergeSource(parent, valNode)
		if err != nil {
			return nil, err
		}
		return []*value.Map{m}, nil
	case ir.SequenceKind:
		res := make([]*value.Map, 0, len(valNode.Children))
		for i := len(valNode.Children) - 1; i >= 0; i-- {
			m, err := b.mergeSource(parent, valNode.Children[i])
			if err != nil {
				return nil, err
			}
			res = append(res, m)
		}
		return res, nil
	default:
		return nil, errf(parent.Tag, ErrInvalidMergeSource,
			"merge value is a %s", valNode.Kind)
	}
}

func (b *Builder) mergeSource(parent, src *ir.Node) (*value.Map, error) {
	v, err := b.Construct(src)
	if err != nil {
		return nil, err
	}
	if isPending(v) {
		return nil, errf(parent.Tag, ErrInvalidMergeSource,
			"merge source refers back to an enclosing node")
	}
	m, ok := v.(*value.Map)
	if !ok {
		return nil, errf(parent.Tag, ErrInvalidMergeSource,
			"merge source decoded to %T, not a mapping", v)
	}
	return m, nil
}
