package construct

import (
	"errors"
	"fmt"
)

// Error categories. All construction failures wrap exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrUnexpectedKind     = errors.New("unexpected node kind")
	ErrDuplicateMergeKey  = errors.New("duplicate merge key")
	ErrDuplicateValueKey  = errors.New("duplicate value key")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidMergeSource = errors.New("merge requires a mapping or a sequence of mappings")
	ErrScalarParse        = errors.New("scalar parse error")
	ErrUnknownType        = errors.New("unknown type")
	ErrPropertyAssignment = errors.New("property assignment error")
	ErrUnrecognizedTag    = errors.New("unrecognized tag")
	ErrDepth              = errors.New("document nested too deeply")

	// ErrInternal marks invariant violations of the construction
	// engine itself, not bad input.
	ErrInternal = errors.New("internal construction error")
)

// Error carries the offending tag along with the failure category.
type Error struct {
	Tag string
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	switch {
	case msg == "" && e.Err != nil:
		msg = e.Err.Error()
	case msg != "" && e.Err != nil:
		msg = msg + ": " + e.Err.Error()
	}
	if e.Tag != "" {
		return fmt.Sprintf("construct error for tag %s: %s", e.Tag, msg)
	}
	return fmt.Sprintf("construct error: %s", msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errf(tag string, category error, format string, args ...any) error {
	return &Error{
		Tag: tag,
		Msg: fmt.Sprintf(format, args...),
		Err: category,
	}
}
