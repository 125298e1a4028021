package parser

import (
	"errors"
)

var (
	// ErrUnexpectedEOF means the input ended inside a list, or held no
	// expression at all.
	ErrUnexpectedEOF = errors.New("unexpected EOF")
	// ErrUnexpectedToken means a token showed up where the grammar does not
	// allow it, like a separator right after an opening bracket.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrTrailingInput means a complete expression was followed by more
	// tokens, as in "[1]]" or "[1][2]".
	ErrTrailingInput = errors.New("trailing input after expression")
)
