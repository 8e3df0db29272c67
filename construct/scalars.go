package construct

import (
	"time"

	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/literal"
	"github.com/treeform-format/go-treeform/value"
)

// Scalar extracts a node's scalar text and style. A mapping carrying
// a value-tagged key stands in for its scalar equivalent, recursively.
func (b *Builder) Scalar(node *ir.Node) (string, byte, error) {
	if node.Kind == ir.MappingKind {
		for i := range node.Keys {
			if node.Keys[i].Tag == ir.ValueTag {
				return b.Scalar(node.Values[i])
			}
		}
	}
	if node.Kind != ir.ScalarKind {
		return "", 0, errf(node.Tag, ErrUnexpectedKind,
			"expected scalar, got %s", node.Kind)
	}
	return node.Value, node.Style, nil
}

// scalarValue is the generic string-or-symbol rule: empty text is
// null, a plain scalar starting with ':' is a symbol, anything else
// is the text itself.
func scalarValue(text string, style byte) any {
	if text == "" {
		return nil
	}
	if text[0] == ':' && style == 0 {
		return value.Symbol(text[1:])
	}
	return text
}

func constructNull(b *Builder, node *ir.Node) (any, error) {
	if _, _, err := b.Scalar(node); err != nil {
		return nil, err
	}
	return nil, nil
}

func constructBool(b *Builder, node *ir.Node) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	v, ok := literal.ParseBool(text)
	if !ok {
		return nil, errf(node.Tag, ErrScalarParse, "not a boolean: %q", text)
	}
	return v, nil
}

func constructInt(b *Builder, node *ir.Node) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	v, err := literal.ParseInt(text)
	if err != nil {
		return nil, &Error{Tag: node.Tag, Err: ErrScalarParse, Msg: err.Error()}
	}
	return v, nil
}

func constructFloat(b *Builder, node *ir.Node) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	v, err := literal.ParseFloat(text)
	if err != nil {
		return nil, &Error{Tag: node.Tag, Err: ErrScalarParse, Msg: err.Error()}
	}
	return v, nil
}

func constructBinary(b *Builder, node *ir.Node) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	d, err := literal.ParseBinary(text)
	if err != nil {
		return nil, &Error{Tag: node.Tag, Err: ErrScalarParse, Msg: err.Error()}
	}
	return d, nil
}

func constructStr(b *Builder, node *ir.Node) (any, error) {
	text, style, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	return scalarValue(text, style), nil
}

// Timestamp text outside the grammar falls back to the private-type
// wrapper rather than erroring.
func constructTimestamp(b *Builder, node *ir.Node) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	var (
		t  time.Time
		ok bool
	)
	if b.utc {
		t, ok = literal.ParseTimestampUTC(text)
	} else {
		t, ok = literal.ParseTimestamp(text)
	}
	if !ok {
		return &value.Private{Tag: node.Tag, Value: text}, nil
	}
	return t, nil
}

func constructTimestampYMD(b *Builder, node *ir.Node) (any, error) {
	text, _, err := b.Scalar(node)
	if err != nil {
		return nil, err
	}
	var (
		t  time.Time
		ok bool
	)
	if b.utc {
		t, ok = literal.ParseDateUTC(text)
	} else {
		t, ok = literal.ParseDate(text)
	}
	if !ok {
		return &value.Private{Tag: node.Tag, Value: text}, nil
	}
	return t, nil
}
