package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
	isSeparator = isTokenType(TokenSeparator)
	isInteger   = isTokenType(TokenInteger)
)

// New initializes a Lexer that reads a single expression from r. Tokens are
// produced on demand by Next, one at a time.
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		state: lexDefaultState,
		buf:   []rune{},
	}

	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(_ *scanner.Scanner, msg string) {
		if lx.lastErr == nil {
			lx.lastErr = fmt.Errorf("%w: %s at column %d", ErrInvalidToken, msg, lx.offset)
		}
	}
	lx.in = s

	return lx
}

// NewString initializes a Lexer over the given text.
func NewString(s string) *Lexer {
	return New(strings.NewReader(s))
}

// Lexer represents a lexical analyzer. A Lexer walks its input exactly once
// and can't be restarted.
type Lexer struct {
	in *scanner.Scanner

	state   lexState
	tok     Token
	emitted bool
	lastErr error

	buf []rune

	start  int
	offset int
}

// Next advances the lexer to the next token and reports whether a token is
// available. Once the input is exhausted every call yields a TokenEOF token.
// Next returns false only after an error, see Err.
func (lx *Lexer) Next() bool {
	if lx.lastErr != nil {
		return false
	}

	if lx.state == nil {
		lx.tok = Token{tt: TokenEOF, col: lx.offset + 1}
		return true
	}

	lx.emitted = false
	for !lx.emitted && lx.state != nil && lx.lastErr == nil {
		lx.state = lx.state(lx)
	}

	return lx.lastErr == nil
}

// Token returns the token produced by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: string(lx.buf),
		col:    lx.start + 1,
	}
	lx.emitted = true

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)
	case isSeparator(r):
		return lexEmit(TokenSeparator)
	case isInteger(r):
		return lexInteger
	default:
		return lexStateError(fmt.Errorf("%w: unexpected %q at column %d", ErrInvalidToken, r, lx.offset))
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// lexInteger collects a run of digits. The rune that ends the run is only
// peeked at, it belongs to the next token.
func lexInteger(lx *Lexer) lexState {
	for isInteger(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	text := string(lx.buf)
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lexStateError(fmt.Errorf("%w: integer %q out of range at column %d", ErrInvalidToken, text, lx.start+1))
	}

	lx.emit(TokenInteger)
	lx.tok.value = n
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if errors.Is(err, io.EOF) {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the final TokenEOF, or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tok := lx.Token()
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}

	return nil, lx.Err()
}
