package lexer

import (
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)
