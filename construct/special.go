package construct

import (
	"unicode"
	"unicode/utf8"

	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/typereg"
	"github.com/treeform-format/go-treeform/value"
)

func (b *Builder) factory(tag, name string) (typereg.Factory, error) {
	if b.types == nil {
		return nil, errf(tag, ErrUnknownType, "no type registry configured")
	}
	f, ok := b.types.LookupFactory(name)
	if !ok {
		return nil, errf(tag, ErrUnknownType, "no factory for %q", name)
	}
	return f, nil
}

// constructSeqType populates a host sequence container named by the
// tag suffix, appending each element as generic sequence construction
// would.
func constructSeqType(b *Builder, suffix string, node *ir.Node) (any, error) {
	if node.Kind != ir.SequenceKind {
		return nil, errf(node.Tag, ErrUnexpectedKind,
			"expected sequence, got %s", node.Kind)
	}
	factory, err := b.factory(node.Tag, suffix)
	if err != nil {
		return nil, err
	}
	inst := factory()
	app, ok := inst.(typereg.Appender)
	if !ok {
		return nil, errf(node.Tag, ErrUnknownType,
			"type %q is not a sequence container", suffix)
	}
	for i, c := range node.Children {
		v, err := b.Construct(c)
		if err != nil {
			return nil, err
		}
		if isPending(v) {
			rep, ok := inst.(typereg.Replacer)
			if !ok {
				return nil, errf(node.Tag, ErrUnknownType,
					"type %q cannot hold cyclic elements (no Replace)", suffix)
			}
			b.Defer(v, func(r any) { rep.Replace(i, r) })
			app.Append(nil)
			continue
		}
		app.Append(v)
	}
	return inst, nil
}

// constructMapType populates a host mapping container named by the
// tag suffix.
func constructMapType(b *Builder, suffix string, node *ir.Node) (any, error) {
	if node.Kind != ir.MappingKind {
		return nil, errf(node.Tag, ErrUnexpectedKind,
			"expected mapping, got %s", node.Kind)
	}
	factory, err := b.factory(node.Tag, suffix)
	if err != nil {
		return nil, err
	}
	inst := factory()
	set, ok := inst.(typereg.Setter)
	if !ok {
		return nil, errf(node.Tag, ErrUnknownType,
			"type %q is not a mapping container", suffix)
	}
	for i := range node.Keys {
		k, err := b.Construct(node.Keys[i])
		if err != nil {
			return nil, err
		}
		if isPending(k) {
			return nil, errf(node.Tag, ErrUnexpectedKind,
				"mapping key refers back to an enclosing node")
		}
		v, err := b.Construct(node.Values[i])
		if err != nil {
			return nil, err
		}
		if b.Defer(v, func(r any) { set.Set(k, r) }) {
			set.Set(k, nil)
			continue
		}
		set.Set(k, v)
	}
	return inst, nil
}

// constructObject instantiates the host type named by the tag suffix
// and assigns each mapping entry as a named property.
func constructObject(b *Builder, suffix string, node *ir.Node) (any, error) {
	if node.Kind != ir.MappingKind {
		return nil, errf(node.Tag, ErrUnexpectedKind,
			"expected mapping, got %s", node.Kind)
	}
	factory, err := b.factory(node.Tag, suffix)
	if err != nil {
		return nil, err
	}
	inst := factory()
	for i := range node.Keys {
		k, err := b.Construct(node.Keys[i])
		if err != nil {
			return nil, err
		}
		var name string
		switch kv := k.(type) {
		case string:
			name = kv
		case value.Symbol:
			name = string(kv)
		default:
			return nil, errf(node.Tag, ErrPropertyAssignment,
				"property key must be a string, got %T", k)
		}
		prop := propertyName(name)
		v, err := b.Construct(node.Values[i])
		if err != nil {
			return nil, err
		}
		if isPending(v) {
			types := b.types
			b.Defer(v, func(r any) {
				// no error return in a fixup; surfaced by Document
				if err := types.SetProperty(inst, prop, r); err != nil {
					b.deferErr(errf(node.Tag, ErrPropertyAssignment,
						"property %q on %q: %v", prop, suffix, err))
				}
			})
			if err := types.SetProperty(inst, prop, nil); err != nil {
				return nil, errf(node.Tag, ErrPropertyAssignment,
					"property %q on %q: %v", prop, suffix, err)
			}
			continue
		}
		if err := b.types.SetProperty(inst, prop, v); err != nil {
			return nil, errf(node.Tag, ErrPropertyAssignment,
				"property %q on %q: %v", prop, suffix, err)
		}
	}
	return inst, nil
}

// propertyName folds the first character of a document key to the
// host's exported-property convention.
func propertyName(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	u := unicode.ToUpper(r)
	if u == r {
		return key
	}
	return string(u) + key[size:]
}
