package ast

// Compare orders two nodes and returns -1, 0 or +1. Lists are compared
// element by element and a list that runs out first is the smaller one. An
// integer compared against a list is handled as a list holding only that
// integer.
func Compare(a, b *Node) int {
	switch {
	case a.IsValue() && b.IsValue():
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		}
		return 0

	case a.IsValue():
		return compareLists([]*Node{a}, b.list)

	case b.IsValue():
		return compareLists(a.list, []*Node{b})
	}

	return compareLists(a.list, b.list)
}

func compareLists(xs, ys []*Node) int {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if c := Compare(xs[i], ys[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(xs) < len(ys):
		return -1
	case len(xs) > len(ys):
		return 1
	}
	return 0
}
