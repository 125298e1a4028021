// Package listcmp orders nested integer lists by walking their token streams
// side by side, without building a tree for either of them.
package listcmp

import (
	"fmt"
	"strings"

	"github.com/xiam/listcmp/ast"
	"github.com/xiam/listcmp/lexer"
	"github.com/xiam/listcmp/parser"
)

// TokenStream is a forward-only source of tokens. *lexer.Lexer satisfies it.
type TokenStream interface {
	Next() bool
	Token() lexer.Token
	Err() error
}

// CompareFunc orders two expressions given as text.
type CompareFunc func(left, right string) (Ordering, error)

var (
	closeList   = *lexer.NewToken(lexer.TokenCloseList, "]", 0)
	endOfStream = *lexer.NewToken(lexer.TokenEOF, "", 0)
)

// cursor walks one side of a comparison. When an integer on this side gets
// compared against a list it is handled as a single element list; pending
// counts the closing brackets owed for those implicit lists. They are
// handed out as soon as the integer is consumed, before the next real
// token.
type cursor struct {
	ts   TokenStream
	side Side

	tok     lexer.Token
	pending int
}

func (c *cursor) advance() error {
	if c.pending > 0 {
		c.pending--
		c.tok = closeList
		return nil
	}

	if !c.ts.Next() {
		if err := c.ts.Err(); err != nil {
			return &CompareError{Side: c.side, Err: err}
		}
		c.tok = endOfStream
		return nil
	}

	c.tok = c.ts.Token()
	return nil
}

func (c *cursor) malformed(other lexer.Token) error {
	return &CompareError{
		Side: c.side,
		Pos:  c.tok.Pos(),
		Err:  fmt.Errorf("%w: %v against %v", ErrMalformedExpression, c.tok.Type(), other.Type()),
	}
}

func advanceBoth(l, r *cursor) error {
	if err := l.advance(); err != nil {
		return err
	}
	return r.advance()
}

// Compare consumes both streams in lock-step until their order is known.
// Identical expressions compare Equal.
func Compare(left, right TokenStream) (Ordering, error) {
	l := &cursor{ts: left, side: SideLeft}
	r := &cursor{ts: right, side: SideRight}

	if err := advanceBoth(l, r); err != nil {
		return Equal, err
	}

	for {
		var err error

		lt, rt := l.tok.Type(), r.tok.Type()
		switch {
		case lt == lexer.TokenEOF && rt == lexer.TokenEOF:
			return Equal, nil
		case lt == lexer.TokenEOF:
			return Less, nil
		case rt == lexer.TokenEOF:
			return Greater, nil
		}

		switch lt {
		case lexer.TokenOpenList:
			switch rt {
			case lexer.TokenOpenList:
				err = advanceBoth(l, r)
			case lexer.TokenInteger:
				r.pending++
				err = l.advance()
			case lexer.TokenCloseList:
				return Greater, nil
			default:
				return Equal, r.malformed(l.tok)
			}

		case lexer.TokenCloseList:
			switch rt {
			case lexer.TokenCloseList:
				err = advanceBoth(l, r)
			case lexer.TokenSeparator, lexer.TokenInteger, lexer.TokenOpenList:
				return Less, nil
			default:
				return Equal, r.malformed(l.tok)
			}

		case lexer.TokenSeparator:
			switch rt {
			case lexer.TokenSeparator:
				err = advanceBoth(l, r)
			case lexer.TokenCloseList:
				return Greater, nil
			default:
				return Equal, l.malformed(r.tok)
			}

		case lexer.TokenInteger:
			switch rt {
			case lexer.TokenInteger:
				a, b := l.tok.Int(), r.tok.Int()
				switch {
				case a < b:
					return Less, nil
				case a > b:
					return Greater, nil
				}
				err = advanceBoth(l, r)
			case lexer.TokenOpenList:
				l.pending++
				err = r.advance()
			case lexer.TokenCloseList:
				return Greater, nil
			default:
				return Equal, r.malformed(l.tok)
			}

		default:
			return Equal, l.malformed(r.tok)
		}

		if err != nil {
			return Equal, err
		}
	}
}

// CompareStrings orders two expressions without building their trees.
func CompareStrings(left, right string) (Ordering, error) {
	return Compare(lexer.NewString(left), lexer.NewString(right))
}

// CompareBytes is like CompareStrings.
func CompareBytes(left, right []byte) (Ordering, error) {
	return CompareStrings(string(left), string(right))
}

// CompareTrees parses both expressions and orders the resulting trees. It
// checks that both expressions are well-formed, which Compare does not.
func CompareTrees(left, right string) (Ordering, error) {
	a, err := parser.Parse([]byte(left))
	if err != nil {
		return Equal, &CompareError{Side: SideLeft, Err: err}
	}

	b, err := parser.Parse([]byte(right))
	if err != nil {
		return Equal, &CompareError{Side: SideRight, Err: err}
	}

	return Ordering(ast.Compare(a, b)), nil
}

// Mode names a comparison strategy.
type Mode string

const (
	ModeStream Mode = "stream"
	ModeTree   Mode = "tree"
)

// ComparatorFor returns the CompareFunc implementing the given mode.
func ComparatorFor(mode Mode) (CompareFunc, error) {
	switch Mode(strings.ToLower(string(mode))) {
	case ModeStream, "":
		return CompareStrings, nil
	case ModeTree:
		return CompareTrees, nil
	}
	return nil, fmt.Errorf("%w: unknown comparison mode %q", ErrInvalidInput, mode)
}
