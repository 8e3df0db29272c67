package construct

import (
	"errors"
	"testing"

	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/value"
)

func TestDocument_UnknownTagFallback(t *testing.T) {
	// with no matching decoder, construction falls back on the node kind
	b := NewBuilder(nil)
	v, err := b.Document(ir.FromScalar("!mystery", "hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Errorf("got %v, want hello", v)
	}

	seq := ir.FromSeq(ir.FromString("a"), ir.FromString("b")).WithTag("!mystery")
	v, err = b.Document(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := v.([]any)
	if !ok || len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v, want [a b]", v)
	}
}

func TestDocument_SymbolRule(t *testing.T) {
	b := NewBuilder(nil)
	cases := []struct {
		text  string
		style byte
		want  any
	}{
		{":name", 0, value.Symbol("name")},
		{":", 0, value.Symbol("")},
		{":name", '\'', ":name"}, // quoted scalars are never symbols
		{"plain", 0, "plain"},
		// empty text reads as null regardless of quoting style
		{"", 0, nil},
		{"", '"', nil},
	}
	for _, c := range cases {
		n := ir.FromString(c.text)
		n.Style = c.style
		v, err := b.Document(n)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.text, err)
		}
		if v != c.want {
			t.Errorf("%q (style %q): got %#v, want %#v", c.text, c.style, v, c.want)
		}
	}
}

func TestDocument_NilRoot(t *testing.T) {
	v, err := Document(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("got %v, want nil", v)
	}
}

func TestDocument_UnrecognizedKind(t *testing.T) {
	n := &ir.Node{Tag: "!bad"}
	_, err := NewBuilder(nil).Document(n)
	if !errors.Is(err, ErrUnrecognizedTag) {
		t.Fatalf("expected ErrUnrecognizedTag, got %v", err)
	}
}

func TestDocument_DepthGuard(t *testing.T) {
	root := ir.FromSeq()
	n := root
	for i := 0; i < maxDepth+1; i++ {
		child := ir.FromSeq()
		n.Children = append(n.Children, child)
		n = child
	}
	_, err := NewBuilder(nil).Document(root)
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth, got %v", err)
	}
}

func TestDocument_ErrorCarriesTag(t *testing.T) {
	n := ir.FromScalar(ir.IntTag, "not-a-number")
	_, err := Document(n)
	if !errors.Is(err, ErrScalarParse) {
		t.Fatalf("expected ErrScalarParse, got %v", err)
	}
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ce.Tag != ir.IntTag {
		t.Errorf("error tag = %q, want %q", ce.Tag, ir.IntTag)
	}
}

func TestBuilder_FreshStatePerDocument(t *testing.T) {
	b := NewBuilder(nil)
	if _, err := b.Document(ir.FromString("one")); err != nil {
		t.Fatal(err)
	}
	v, err := b.Document(ir.FromString("two"))
	if err != nil {
		t.Fatal(err)
	}
	if v != "two" {
		t.Errorf("got %v, want two", v)
	}
}
