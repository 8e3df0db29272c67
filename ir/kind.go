package ir

import "fmt"

type Kind int

const (
	ScalarKind Kind = iota + 1
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ScalarKind:   "Scalar",
		SequenceKind: "Sequence",
		MappingKind:  "Mapping",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Scalar":   ScalarKind,
		"Sequence": SequenceKind,
		"Mapping":  MappingKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ScalarKind,
		SequenceKind,
		MappingKind,
	}
}

func (k Kind) IsLeaf() bool {
	return k == ScalarKind
}
