// Package parse adapts YAML node trees to the ir node model consumed
// by construction. Anchored nodes and their aliases convert to one
// shared *ir.Node, so self-referential documents carry their cycles
// into construction as node identity.
package parse

import (
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"github.com/treeform-format/go-treeform/ir"
)

// ParseAll converts every document in a YAML stream, in order. Leading
// and directive-terminated document separators are handled by the
// decoder; an empty stream yields no documents.
func ParseAll(r io.Reader) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(r)
	var res []*ir.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		if doc.Kind == 0 {
			res = append(res, ir.Null())
			continue
		}
		c := &converter{memo: map[*yaml.Node]*ir.Node{}}
		n, err := c.node(&doc)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
}

// Parse converts one YAML document.
func Parse(data []byte) (*ir.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.Kind == 0 {
		return ir.Null(), nil
	}
	c := &converter{memo: map[*yaml.Node]*ir.Node{}}
	return c.node(&doc)
}

type converter struct {
	memo map[*yaml.Node]*ir.Node
}

func (c *converter) node(y *yaml.Node) (*ir.Node, error) {
	if n, ok := c.memo[y]; ok {
		return n, nil
	}
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return ir.Null(), nil
		}
		return c.node(y.Content[0])
	case yaml.AliasNode:
		if y.Alias == nil {
			return nil, fmt.Errorf("parse: alias %q has no anchor", y.Value)
		}
		return c.node(y.Alias)
	}

	// memoize before filling so aliases back into this node share it
	n := &ir.Node{Tag: y.LongTag()}
	c.memo[y] = n

	switch y.Kind {
	case yaml.ScalarNode:
		n.Kind = ir.ScalarKind
		n.Value = y.Value
		n.Style = styleByte(y.Style)
	case yaml.SequenceNode:
		n.Kind = ir.SequenceKind
		n.Children = make([]*ir.Node, len(y.Content))
		for i, cy := range y.Content {
			cn, err := c.node(cy)
			if err != nil {
				return nil, err
			}
			n.Children[i] = cn
		}
	case yaml.MappingNode:
		n.Kind = ir.MappingKind
		np := len(y.Content) / 2
		n.Keys = make([]*ir.Node, np)
		n.Values = make([]*ir.Node, np)
		for i := 0; i < np; i++ {
			k, err := c.node(y.Content[2*i])
			if err != nil {
				return nil, err
			}
			v, err := c.node(y.Content[2*i+1])
			if err != nil {
				return nil, err
			}
			n.Keys[i] = retagKey(k)
			n.Values[i] = v
		}
	default:
		return nil, fmt.Errorf("parse: unsupported YAML node kind %d", y.Kind)
	}
	return n, nil
}

// retagKey marks the value-key directive. The merge key "<<" already
// arrives tagged by the YAML resolver; "=" does not.
func retagKey(k *ir.Node) *ir.Node {
	if k.Kind == ir.ScalarKind && k.Style == 0 &&
		k.Tag == ir.StrTag && k.Value == "=" {
		k.Tag = ir.ValueTag
	}
	return k
}

func styleByte(s yaml.Style) byte {
	switch {
	case s&yaml.SingleQuotedStyle != 0:
		return '\''
	case s&yaml.DoubleQuotedStyle != 0:
		return '"'
	case s&yaml.LiteralStyle != 0:
		return '|'
	case s&yaml.FoldedStyle != 0:
		return '>'
	default:
		return 0
	}
}
