package ir

import "testing"

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("round trip %s -> %s", k, back)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Blob")); err == nil {
		t.Error("expected error for unknown kind text")
	}
}

func TestGet(t *testing.T) {
	n := FromPairs(
		KeyVal{Key: FromString("a"), Val: FromString("1")},
		KeyVal{Key: FromString("b"), Val: FromString("2")},
	)
	if v := Get(n, "b"); v == nil || v.Value != "2" {
		t.Errorf("Get b = %v", v)
	}
	if v := Get(n, "missing"); v != nil {
		t.Errorf("Get missing = %v", v)
	}
}

func TestVisit(t *testing.T) {
	n := FromPairs(
		KeyVal{Key: FromString("k"), Val: FromSeq(FromString("x"), FromString("y"))},
	)
	var pre, post int
	err := n.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// mapping, key, seq, and two elements
	if pre != 5 || post != 5 {
		t.Errorf("pre=%d post=%d, want 5/5", pre, post)
	}
}

func TestVisit_NoDescent(t *testing.T) {
	n := FromSeq(FromString("a"))
	var count int
	err := n.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
