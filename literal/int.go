package literal

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseInt parses an integer literal: decimal, 0b binary, 0x hex,
// leading-zero octal, or colon-separated sexagesimal, with optional
// sign and "_"/"," digit separators. The result is an int64 when the
// value fits, otherwise a *big.Int; values never overflow silently.
func ParseInt(s string) (any, error) {
	text, neg, err := normalize(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInt, s)
	}
	v, err := parseMagnitude(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInt, s)
	}
	if neg {
		v.Neg(v)
	}
	return normInt(v), nil
}

// normalize strips digit separators and extracts the sign.
func normalize(s string) (string, bool, error) {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return "", false, ErrSyntax
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return "", false, ErrSyntax
	}
	return s, neg, nil
}

func parseMagnitude(s string) (*big.Int, error) {
	if s == "0" {
		return big.NewInt(0), nil
	}
	if strings.ContainsRune(s, ':') {
		return parseSexagesimal(s)
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0b"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0x"):
		base, s = 16, s[2:]
	case s[0] == '0':
		base, s = 8, s[1:]
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, ErrSyntax
	}
	return v, nil
}

// parseSexagesimal sums colon-separated base-10 fields positionally:
// the rightmost field is units, each field left of it worth a further
// factor of 60.
func parseSexagesimal(s string) (*big.Int, error) {
	sixty := big.NewInt(60)
	total := new(big.Int)
	for _, part := range strings.Split(s, ":") {
		d, ok := new(big.Int).SetString(part, 10)
		if !ok || d.Sign() < 0 {
			return nil, ErrSyntax
		}
		total.Mul(total, sixty)
		total.Add(total, d)
	}
	return total, nil
}

// normInt narrows a big.Int to int64 when representable.
func normInt(v *big.Int) any {
	if v.IsInt64() {
		return v.Int64()
	}
	return v
}
