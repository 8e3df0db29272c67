package ir

// Node is one element of a parsed document tree. Nodes are produced by
// a parser and consumed read-only by construction; node identity (the
// *Node pointer) is stable and is what cycle tracking keys on.
type Node struct {
	Tag  string
	Kind Kind

	// Scalar payload. Style is the scalar's presentation style as
	// reported by the parser, 0 for a plain scalar.
	Value string
	Style byte

	// Sequence payload.
	Children []*Node

	// Mapping payload: parallel slices, insertion order preserved.
	// len(Keys) == len(Values) always.
	Keys   []*Node
	Values []*Node
}

func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

// Null returns the canonical null-scalar node.
func Null() *Node {
	return &Node{Tag: NullTag, Kind: ScalarKind, Value: "~"}
}

func FromString(v string) *Node {
	return &Node{Tag: StrTag, Kind: ScalarKind, Value: v}
}

// FromScalar makes a scalar node with an explicit tag.
func FromScalar(tag, text string) *Node {
	return &Node{Tag: tag, Kind: ScalarKind, Value: text}
}

func FromSeq(children ...*Node) *Node {
	return &Node{Tag: SeqTag, Kind: SequenceKind, Children: children}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromPairs(kvs ...KeyVal) *Node {
	res := &Node{Tag: MapTag, Kind: MappingKind}
	res.Keys = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		res.Keys[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Get returns the value for a string-scalar key, or nil.
func Get(n *Node, key string) *Node {
	for i := range n.Keys {
		k := n.Keys[i]
		if k.Kind == ScalarKind && k.Value == key {
			return n.Values[i]
		}
	}
	return nil
}

// Visit walks the tree pre- and post-order. The callback's bool return
// controls descent on the pre-order call. Visit does not guard against
// cyclic node sharing; callers walking parser output with aliases must
// track visited nodes themselves.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
		for i := range n.Keys {
			if err := n.Keys[i].Visit(f); err != nil {
				return err
			}
			if err := n.Values[i].Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
