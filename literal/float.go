package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFloat parses a float literal: plain decimal, case-insensitive
// ".inf"/".nan" specials, or colon-separated sexagesimal, with the
// same sign and separator handling as ParseInt.
func ParseFloat(s string) (float64, error) {
	text, neg, err := normalize(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFloat, s)
	}
	v, err := parseFloatMagnitude(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFloat, s)
	}
	if neg {
		v = -v
	}
	return v, nil
}

func parseFloatMagnitude(s string) (float64, error) {
	switch strings.ToLower(s) {
	case ".inf":
		return math.Inf(1), nil
	case ".nan":
		return math.NaN(), nil
	}
	if strings.ContainsRune(s, ':') {
		return parseSexagesimalFloat(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrSyntax
	}
	return v, nil
}

func parseSexagesimalFloat(s string) (float64, error) {
	var total float64
	for _, part := range strings.Split(s, ":") {
		d, err := strconv.ParseFloat(part, 64)
		if err != nil || d < 0 {
			return 0, ErrSyntax
		}
		total = total*60 + d
	}
	return total, nil
}
