package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a human-readable, indented representation of a node
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "[%d]\n", len(n.List()))
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeInt:
		fmt.Fprintf(w, "%d\n", n.Int())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its canonical text representation
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte(":nil")
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		return []byte(fmt.Sprintf("[%s]", strings.Join(nodes, ",")))

	case NodeTypeInt:
		return []byte(strconv.FormatInt(n.Int(), 10))

	default:
		panic("unknown node type")
	}
}
