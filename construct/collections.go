package construct

import (
	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/value"
)

// omap: a sequence of single-entry mappings, decoded to an ordered
// mapping with duplicate keys rejected.
func constructOmap(b *Builder, node *ir.Node) (any, error) {
	res := value.NewMap()
	err := b.eachPair(node, func(key, val any) error {
		if res.Has(key) {
			return errf(node.Tag, ErrDuplicateKey, "omap key %v", key)
		}
		b.setEntry(res, key, val)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// pairs: like omap but duplicates are allowed and order plus
// multiplicity preserved as a sequence of [key, value] pairs.
func constructPairs(b *Builder, node *ir.Node) (any, error) {
	res := make([]any, 0, len(node.Children))
	err := b.eachPair(node, func(key, val any) error {
		pair := []any{key, nil}
		if !b.Defer(val, func(r any) { pair[1] = r }) {
			pair[1] = val
		}
		res = append(res, pair)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// eachPair walks the sequence-of-single-entry-mappings shape shared
// by omap and pairs.
func (b *Builder) eachPair(node *ir.Node, f func(key, val any) error) error {
	if node.Kind != ir.SequenceKind {
		return errf(node.Tag, ErrUnexpectedKind,
			"expected a sequence of single-entry mappings, got %s", node.Kind)
	}
	for _, c := range node.Children {
		if c.Kind != ir.MappingKind || len(c.Keys) != 1 {
			return errf(node.Tag, ErrUnexpectedKind,
				"expected a single-entry mapping element, got %s with %d entries",
				c.Kind, len(c.Keys))
		}
		key, err := b.Construct(c.Keys[0])
		if err != nil {
			return err
		}
		if isPending(key) {
			return errf(node.Tag, ErrUnexpectedKind,
				"pair key refers back to an enclosing node")
		}
		val, err := b.Construct(c.Values[0])
		if err != nil {
			return err
		}
		if err := f(key, val); err != nil {
			return err
		}
	}
	return nil
}

// set: a mapping whose keys are the members; values are ignored.
func constructSet(b *Builder, node *ir.Node) (any, error) {
	if node.Kind != ir.MappingKind {
		return nil, errf(node.Tag, ErrUnexpectedKind,
			"expected mapping, got %s", node.Kind)
	}
	res := value.NewMap()
	for _, keyNode := range node.Keys {
		k, err := b.Construct(keyNode)
		if err != nil {
			return nil, err
		}
		if isPending(k) {
			return nil, errf(node.Tag, ErrUnexpectedKind,
				"set member refers back to an enclosing node")
		}
		res.Set(k, nil)
	}
	return res, nil
}
