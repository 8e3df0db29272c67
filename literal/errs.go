package literal

import "errors"

var (
	ErrSyntax = errors.New("invalid literal syntax")
	ErrBool   = errors.New("not a boolean literal")
	ErrInt    = errors.New("not an integer literal")
	ErrFloat  = errors.New("not a float literal")
	ErrBinary = errors.New("not a base64 literal")
)
