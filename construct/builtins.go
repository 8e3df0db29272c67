package construct

import "github.com/treeform-format/go-treeform/ir"

// RegisterBuiltins installs the default tag table on r. It panics on
// collision, which can only mean r already carries builtins.
func RegisterBuiltins(r *Registry) {
	exact := func(tag string, f Func) {
		if err := r.Exact(tag, f); err != nil {
			panic(err)
		}
	}
	prefix := func(p string, f PrefixFunc) {
		if err := r.Prefix(p, f); err != nil {
			panic(err)
		}
	}

	exact(ir.NullTag, constructNull)
	exact(ir.BoolTag, constructBool)
	exact(ir.IntTag, constructInt)
	exact(ir.FloatTag, constructFloat)
	exact(ir.StrTag, constructStr)
	exact(ir.BinaryTag, constructBinary)
	exact(ir.TimestampTag, constructTimestamp)
	exact(ir.TimestampYMDTag, constructTimestampYMD)
	exact(ir.SeqTag, func(b *Builder, node *ir.Node) (any, error) {
		return b.Sequence(node)
	})
	exact(ir.MapTag, func(b *Builder, node *ir.Node) (any, error) {
		return b.Mapping(node)
	})
	exact(ir.OmapTag, constructOmap)
	exact(ir.PairsTag, constructPairs)
	exact(ir.SetTag, constructSet)

	prefix(ir.SeqTypePrefix, constructSeqType)
	prefix(ir.MapTypePrefix, constructMapType)
	prefix(ir.ObjectPrefix, constructObject)
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}()

// Default is the process-wide registry carrying the builtin tag
// table. Applications extend it during init, before the first decode.
func Default() *Registry {
	return defaultRegistry
}

// Document decodes root against the default registry.
func Document(root *ir.Node, opts ...Option) (any, error) {
	return NewBuilder(nil, opts...).Document(root)
}
