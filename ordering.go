package listcmp

// Ordering is the verdict of a comparison.
type Ordering int

// Comparison verdicts, usable directly as cmp-style results.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "invalid"
}

// Reverse returns the verdict seen from the other side.
func (o Ordering) Reverse() Ordering {
	return -o
}
