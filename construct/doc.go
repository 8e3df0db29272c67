// Package construct turns tagged node trees into decoded values.
//
// A Registry maps exact tags and tag prefixes to decoders; a Builder
// dispatches each node through a registry and assembles sequences and
// mappings, resolving self-referential structure with deferred
// fixups. The builtin tag table covers the core scalar, collection,
// and parametrized-construction tags.
//
//	v, err := construct.Document(root)
//
//	// isolated registry with a custom tag
//	r := construct.NewRegistry()
//	construct.RegisterBuiltins(r)
//	r.Exact("!celsius", decodeCelsius)
//	v, err = construct.NewBuilder(r).Document(root)
//
// Custom decoders embedding sub-structure recurse through
// Builder.Construct and must hand any value for which Builder.Defer
// reports true to Defer instead of storing it: such a value is a
// link to a node still under construction, patched in after the
// enclosing construction completes.
package construct
