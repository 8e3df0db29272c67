package literal

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseBinary decodes a base64 scalar. Line breaks inside the text are
// ignored so folded and literal block scalars both work.
func ParseBinary(s string) ([]byte, error) {
	s = strings.Map(dropBreak, s)
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinary, err)
	}
	return d, nil
}

func dropBreak(r rune) rune {
	if r == '\r' || r == '\n' {
		return -1
	}
	return r
}
