package construct

import (
	"errors"
	"testing"

	"github.com/treeform-format/go-treeform/ir"
	"github.com/treeform-format/go-treeform/value"
)

func mergeKey() *ir.Node {
	return ir.FromScalar(ir.MergeTag, "<<")
}

func valueKey() *ir.Node {
	return ir.FromScalar(ir.ValueTag, "=")
}

func strPair(k, v string) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: ir.FromString(v)}
}

func TestMapping_OwnEntriesWin(t *testing.T) {
	src := ir.FromPairs(strPair("a", "base-a"), strPair("b", "base-b"))
	root := ir.FromPairs(
		ir.KeyVal{Key: mergeKey(), Val: src},
		strPair("a", "own-a"),
	)

	v, err := Document(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	if got, _ := m.Get("a"); got != "own-a" {
		t.Errorf("a = %v, want own-a", got)
	}
	if got, _ := m.Get("b"); got != "base-b" {
		t.Errorf("b = %v, want base-b", got)
	}
}

func TestMapping_SequenceMergeFirstWins(t *testing.T) {
	first := ir.FromPairs(strPair("k", "first"), strPair("only1", "x"))
	second := ir.FromPairs(strPair("k", "second"), strPair("only2", "y"))
	root := ir.FromPairs(
		ir.KeyVal{Key: mergeKey(), Val: ir.FromSeq(first, second)},
	)

	v, err := Document(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	if got, _ := m.Get("k"); got != "first" {
		t.Errorf("k = %v, want first", got)
	}
	if got, _ := m.Get("only1"); got != "x" {
		t.Errorf("only1 = %v, want x", got)
	}
	if got, _ := m.Get("only2"); got != "y" {
		t.Errorf("only2 = %v, want y", got)
	}
}

func TestMapping_DuplicateMergeKey(t *testing.T) {
	root := ir.FromPairs(
		ir.KeyVal{Key: mergeKey(), Val: ir.FromPairs()},
		ir.KeyVal{Key: mergeKey(), Val: ir.FromPairs()},
	)
	_, err := Document(root)
	if !errors.Is(err, ErrDuplicateMergeKey) {
		t.Fatalf("expected ErrDuplicateMergeKey, got %v", err)
	}
}

func TestMapping_DuplicateValueKey(t *testing.T) {
	root := ir.FromPairs(
		ir.KeyVal{Key: valueKey(), Val: ir.FromString("one")},
		ir.KeyVal{Key: valueKey(), Val: ir.FromString("two")},
	)
	_, err := Document(root)
	if !errors.Is(err, ErrDuplicateValueKey) {
		t.Fatalf("expected ErrDuplicateValueKey, got %v", err)
	}
}

func TestMapping_ValueKeyEntry(t *testing.T) {
	root := ir.FromPairs(
		ir.KeyVal{Key: valueKey(), Val: ir.FromString("payload")},
		strPair("extra", "e"),
	)
	v, err := Document(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	if got, _ := m.Get("="); got != "payload" {
		t.Errorf("= entry is %v, want payload", got)
	}
	if got, _ := m.Get("extra"); got != "e" {
		t.Errorf("extra = %v, want e", got)
	}
}

func TestMapping_InvalidMergeSource(t *testing.T) {
	for _, val := range []*ir.Node{
		ir.FromString("scalar"),
		ir.FromSeq(ir.FromString("scalar-elem")),
	} {
		root := ir.FromPairs(ir.KeyVal{Key: mergeKey(), Val: val})
		_, err := Document(root)
		if !errors.Is(err, ErrInvalidMergeSource) {
			t.Fatalf("expected ErrInvalidMergeSource, got %v", err)
		}
	}
}

func TestMapping_MergeBackReference(t *testing.T) {
	// merging in an enclosing mapping is unresolvable
	root := ir.FromPairs(ir.KeyVal{Key: mergeKey()})
	root.Values[0] = root
	_, err := Document(root)
	if !errors.Is(err, ErrInvalidMergeSource) {
		t.Fatalf("expected ErrInvalidMergeSource, got %v", err)
	}
}

func TestMapping_MergeDeferredSourceEntry(t *testing.T) {
	// the source's entry links back to the merging map, so at layering
	// time the source still holds a provisional slot; the merged result
	// must resolve it, not keep a permanent nil
	root := ir.FromPairs(ir.KeyVal{Key: mergeKey()})
	src := ir.FromPairs(ir.KeyVal{Key: ir.FromString("k")})
	src.Values[0] = root
	root.Values[0] = src

	v, err := Document(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	got, ok := m.Get("k")
	if !ok {
		t.Fatal("missing merged entry k")
	}
	if got != any(m) {
		t.Errorf("k = %#v, want the decoded map itself", got)
	}
}

func TestMapping_OwnWinsOverDeferredMergeEntry(t *testing.T) {
	root := ir.FromPairs(
		ir.KeyVal{Key: mergeKey()},
		strPair("k", "own"),
	)
	src := ir.FromPairs(ir.KeyVal{Key: ir.FromString("k")})
	src.Values[0] = root
	root.Values[0] = src

	v, err := Document(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(*value.Map)
	// the deferred merge entry's late patch must not clobber the own
	// entry once fixups run
	if got, _ := m.Get("k"); got != "own" {
		t.Errorf("k = %#v, want own", got)
	}
}

func TestMapping_MergePreservesOwnOrder(t *testing.T) {
	src := ir.FromPairs(strPair("z", "1"), strPair("a", "2"))
	root := ir.FromPairs(
		ir.KeyVal{Key: mergeKey(), Val: src},
		strPair("m", "3"),
	)
	v, err := Document(root)
	if err != nil {
		t.Fatal(err)
	}
	keys := v.(*value.Map).Keys()
	want := []any{"z", "a", "m"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}
