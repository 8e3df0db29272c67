package construct

import (
	"errors"
	"testing"

	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/value"
)

func pairElem(k, v string) *ir.Node {
	return ir.FromPairs(strPair(k, v))
}

func TestConstructOmap(t *testing.T) {
	node := ir.FromSeq(pairElem("b", "2"), pairElem("a", "1")).WithTag(ir.OmapTag)
	v, err := Document(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("keys = %v, want [b a]", keys)
	}
	if got, _ := m.Get("a"); got != "1" {
		t.Errorf("a = %v, want 1", got)
	}
}

func TestConstructOmap_DuplicateKey(t *testing.T) {
	node := ir.FromSeq(pairElem("k", "1"), pairElem("k", "2")).WithTag(ir.OmapTag)
	_, err := Document(node)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestConstructOmap_BadShape(t *testing.T) {
	for _, node := range []*ir.Node{
		ir.FromString("scalar").WithTag(ir.OmapTag),
		ir.FromSeq(ir.FromString("elem")).WithTag(ir.OmapTag),
		ir.FromSeq(ir.FromPairs(strPair("a", "1"), strPair("b", "2"))).WithTag(ir.OmapTag),
	} {
		if _, err := Document(node); !errors.Is(err, ErrUnexpectedKind) {
			t.Fatalf("expected ErrUnexpectedKind, got %v", err)
		}
	}
}

func TestConstructPairs(t *testing.T) {
	node := ir.FromSeq(pairElem("k", "1"), pairElem("k", "2")).WithTag(ir.PairsTag)
	v, err := Document(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.([]any)
	if len(got) != 2 {
		t.Fatalf("got %d pairs, want 2", len(got))
	}
	p0, p1 := got[0].([]any), got[1].([]any)
	if p0[0] != "k" || p0[1] != "1" || p1[0] != "k" || p1[1] != "2" {
		t.Errorf("got %v", got)
	}
}

func TestConstructSet(t *testing.T) {
	node := ir.FromPairs(
		ir.KeyVal{Key: ir.FromString("x"), Val: ir.Null()},
		ir.KeyVal{Key: ir.FromString("y"), Val: ir.Null()},
	).WithTag(ir.SetTag)
	v, err := Document(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	if !m.Has("x") || !m.Has("y") {
		t.Errorf("missing members: %v", m.Keys())
	}
	if got, _ := m.Get("x"); got != nil {
		t.Errorf("member value = %v, want nil", got)
	}
}

func TestConstructPairs_CyclicValue(t *testing.T) {
	// a pair value linking back to the enclosing sequence is patched in
	root := ir.FromSeq().WithTag(ir.PairsTag)
	elem := ir.FromPairs(ir.KeyVal{Key: ir.FromString("loop"), Val: root})
	root.Children = append(root.Children, elem)

	v, err := Document(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := v.([]any)
	pair := got[0].([]any)
	if pair[0] != "loop" {
		t.Fatalf("key = %v", pair[0])
	}
	inner, ok := pair[1].([]any)
	if !ok || len(inner) != 1 {
		t.Fatalf("pair value is %T, want the pairs sequence", pair[1])
	}
}
