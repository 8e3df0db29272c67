// Package typereg abstracts host-type instantiation for parametrized
// construction. The construction engine never reflects over host
// types itself; it asks a Types implementation for zero-argument
// factories and property assignment.
package typereg

// Factory produces a fresh instance of a registered host type.
type Factory func() any

// Types is what the construction engine consumes: factory lookup by
// type name plus named property assignment on produced instances.
type Types interface {
	LookupFactory(name string) (Factory, bool)
	SetProperty(instance any, property string, v any) error
}

// Appender is implemented by host sequence containers; parametrized
// sequence construction appends each decoded element through it.
type Appender interface {
	Append(v any)
}

// Replacer optionally extends an Appender with slot rebinding. A host
// sequence that may hold cyclic entries must implement it so deferred
// values can be patched in.
type Replacer interface {
	Replace(i int, v any)
}

// Setter is implemented by host mapping containers. Set both inserts
// and rebinds, so it also serves deferred patches for cyclic values.
type Setter interface {
	Set(key, val any)
}

// PropertySetter lets an instance handle its own property assignment.
// Registry.SetProperty delegates to it when implemented.
type PropertySetter interface {
	SetProperty(name string, v any) error
}
