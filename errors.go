package listcmp

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedExpression = errors.New("malformed expression")
	ErrInvalidInput        = errors.New("invalid input")
)

// Side names one of the two expressions of a comparison.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// CompareError reports which expression of a comparison could not be read.
type CompareError struct {
	Side Side
	Pos  int
	Err  error
}

func (e *CompareError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("%s expression at column %d: %v", e.Side, e.Pos, e.Err)
	}
	return fmt.Sprintf("%s expression: %v", e.Side, e.Err)
}

func (e *CompareError) Unwrap() error {
	return e.Err
}

// PairError reports the pair whose comparison failed.
type PairError struct {
	Index int
	Err   error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair %d: %v", e.Index, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}
