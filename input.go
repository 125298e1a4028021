package listcmp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxLineSize is the longest line the readers accept.
const MaxLineSize = 1 << 20

// NewLineScanner returns a line scanner that accepts lines up to MaxLineSize.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return s
}

// ReadPairs reads blocks of two expressions separated by blank lines.
func ReadPairs(r io.Reader) ([]Pair, error) {
	pairs := []Pair{}
	block := []string{}
	blockLine := 0

	flush := func() error {
		switch len(block) {
		case 0:
			return nil
		case 2:
			pairs = append(pairs, Pair{Left: block[0], Right: block[1]})
			block = block[:0]
			return nil
		}
		return fmt.Errorf("%w: block at line %d has %d expressions, expected 2", ErrInvalidInput, blockLine, len(block))
	}

	s := NewLineScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(block) == 0 {
			blockLine = n
		}
		block = append(block, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ReadExpressions reads every non-blank line as one expression.
func ReadExpressions(r io.Reader) ([]string, error) {
	exprs := []string{}

	s := NewLineScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			exprs = append(exprs, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return exprs, nil
}
