package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/listcmp/lexer"
)

// Node represents leaf of the AST
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token

	n    int64
	list []*Node
}

// NewInt creates and returns an orphaned integer node
func NewInt(tok *lexer.Token, v int64) *Node {
	return &Node{
		nt:  NodeTypeInt,
		tok: tok,
		n:   v,
	}
}

// NewList creates and returns an empty node of type "list"
func NewList(tok *lexer.Token) *Node {
	return &Node{
		nt:   NodeTypeList,
		tok:  tok,
		list: []*Node{},
	}
}

// PushInt appends a new integer to the node
func (n *Node) PushInt(tok *lexer.Token, v int64) (*Node, error) {
	node := NewInt(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Int returns the value of an integer node
func (n Node) Int() int64 {
	return n.n
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.list
}

func (n Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.list))
	}
	return fmt.Sprintf("(%v): %d", n.nt, n.n)
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.list = append(n.list, node)
		node.p = n
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) Parent() *Node {
	return n.p
}
