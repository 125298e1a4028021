package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/listcmp/ast"
	"github.com/xiam/listcmp/lexer"
)

// Parser builds the tree of a single expression.
type Parser struct {
	lx *lexer.Lexer
}

func New(r io.Reader) *Parser {
	return &Parser{lx: lexer.New(r)}
}

// Parse reads exactly one expression followed by the end of the input.
func (p *Parser) Parse() (*ast.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	root, err := expectValue(p, tok)
	if err != nil {
		return nil, err
	}

	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if !tok.Is(lexer.TokenEOF) {
		return nil, fmt.Errorf("%w: %v at column %d", ErrTrailingInput, tok.Type(), tok.Pos())
	}

	return root, nil
}

func (p *Parser) next() (*lexer.Token, error) {
	if !p.lx.Next() {
		return nil, p.lx.Err()
	}
	tok := p.lx.Token()
	return &tok, nil
}

func unexpectedToken(tok *lexer.Token) error {
	return fmt.Errorf("%w %v at column %d", ErrUnexpectedToken, tok.Type(), tok.Pos())
}

func expectValue(p *Parser, tok *lexer.Token) (*ast.Node, error) {
	switch tok.Type() {
	case lexer.TokenInteger:
		return ast.NewInt(tok, tok.Int()), nil
	case lexer.TokenOpenList:
		return expectList(p, tok)
	case lexer.TokenEOF:
		return nil, ErrUnexpectedEOF
	}
	return nil, unexpectedToken(tok)
}

// expectList reads the elements of a list whose opening bracket was already
// consumed, up to and including the matching closing bracket.
func expectList(p *Parser, open *lexer.Token) (*ast.Node, error) {
	list := ast.NewList(open)

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.TokenCloseList) {
		return list, nil
	}

	for {
		node, err := expectValue(p, tok)
		if err != nil {
			return nil, err
		}
		if err := list.Push(node); err != nil {
			return nil, err
		}

		tok, err = p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Type() {
		case lexer.TokenCloseList:
			return list, nil
		case lexer.TokenSeparator:
			if tok, err = p.next(); err != nil {
				return nil, err
			}
		case lexer.TokenEOF:
			return nil, ErrUnexpectedEOF
		default:
			return nil, unexpectedToken(tok)
		}
	}
}

// Parse builds the tree of the expression in the given bytes.
func Parse(in []byte) (*ast.Node, error) {
	return New(bytes.NewReader(in)).Parse()
}

// Validate reports whether in holds exactly one well-formed expression.
func Validate(in []byte) error {
	_, err := Parse(in)
	return err
}
