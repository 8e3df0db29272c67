package value

import (
	"bytes"
	"math/big"
	"time"
)

// Equal is the key-equality relation for Map. Scalars compare by
// value (int64 and *big.Int interoperate; NaN is unequal to itself),
// byte sequences and timestamps by content, and containers first by
// identity, then structurally. Container pairs under comparison are
// tracked so Equal stays total on self-referential values, including
// two distinct but structurally equal cyclic containers.
func Equal(a, b any) bool {
	return eq(a, b, nil)
}

// visit is a pair of container identities currently being compared.
// Assuming such a pair equal while its entries are still on the stack
// is sound: any real mismatch surfaces on some other branch.
type visit [2]any

func eq(a, b any, seen map[visit]bool) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case int64:
		return intEqual(big.NewInt(av), b)
	case *big.Int:
		return intEqual(av, b)
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		if len(av) == 0 || &av[0] == &bv[0] {
			return true
		}
		v := visit{&av[0], &bv[0]}
		if seen[v] {
			return true
		}
		if seen == nil {
			seen = map[visit]bool{}
		}
		seen[v] = true
		for i := range av {
			if !eq(av[i], bv[i], seen) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		if av.Len() != bv.Len() {
			return false
		}
		v := visit{av, bv}
		if seen[v] {
			return true
		}
		if seen == nil {
			seen = map[visit]bool{}
		}
		seen[v] = true
		for _, e := range av.Entries() {
			got, ok := bv.Get(e.Key)
			if !ok || !eq(e.Val, got, seen) {
				return false
			}
		}
		return true
	case *Private:
		bv, ok := b.(*Private)
		if !ok {
			return false
		}
		return av == bv || (av.Tag == bv.Tag && eq(av.Value, bv.Value, seen))
	default:
		return a == b
	}
}

func intEqual(av *big.Int, b any) bool {
	switch bv := b.(type) {
	case int64:
		return av.IsInt64() && av.Int64() == bv
	case *big.Int:
		return av.Cmp(bv) == 0
	default:
		return false
	}
}
