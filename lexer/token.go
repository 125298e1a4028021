package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	value  int64

	col int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		col:    col,
	}
}

// NewInteger creates a lexical unit of type integer holding v
func NewInteger(v int64, col int) *Token {
	return &Token{
		tt:     TokenInteger,
		lexeme: fmt.Sprintf("%d", v),
		value:  v,
		col:    col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the 1-based column of the lexical unit
func (t Token) Pos() int {
	return t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the numeric value of an integer token, zero for any other type.
func (t Token) Int() int64 {
	return t.value
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.col)
}
