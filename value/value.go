package value

import "fmt"

// Symbol is an interned-atom value, distinct from a plain string. A
// bare plain scalar of the form ":name" decodes to Symbol("name").
type Symbol string

func (s Symbol) String() string {
	return ":" + string(s)
}

// Private wraps a payload a decoder claimed by tag but chose not to
// parse into a native representation, such as timestamp text outside
// the recognized grammars. It carries the original tag so applications
// can recognize and unwrap it later.
type Private struct {
	Tag   string
	Value any
}

func (p *Private) String() string {
	return fmt.Sprintf("%s(%v)", p.Tag, p.Value)
}
