package ir

// Domain is the tag namespace for the built-in type table.
const Domain = "tag:yaml.org,2002:"

const (
	NullTag      = Domain + "null"
	BoolTag      = Domain + "bool"
	IntTag       = Domain + "int"
	FloatTag     = Domain + "float"
	StrTag       = Domain + "str"
	BinaryTag    = Domain + "binary"
	TimestampTag = Domain + "timestamp"

	// TimestampYMDTag covers the date-only grammar.
	TimestampYMDTag = Domain + "timestamp#ymd"

	SeqTag   = Domain + "seq"
	MapTag   = Domain + "map"
	OmapTag  = Domain + "omap"
	PairsTag = Domain + "pairs"
	SetTag   = Domain + "set"

	// MergeTag and ValueTag mark mapping keys, not values; they have
	// no decoder of their own.
	MergeTag = Domain + "merge"
	ValueTag = Domain + "value"
)

// Prefix tags for parametrized construction. The tag remainder names a
// host type resolved through a type registry.
const (
	SeqTypePrefix = Domain + "seq:"
	MapTypePrefix = Domain + "map:"
	ObjectPrefix  = Domain + "object:"
)
