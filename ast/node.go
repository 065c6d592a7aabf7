package ast

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/sexpr-calc/lexer"
)

var errNotAVector = errors.New("nodes of type value can't accept children")

// Node is an element of the parsed tree: a leaf (number or bool), an atom or
// a list of nodes.
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNode creates and returns an orphaned node based on the given token
func NewNode(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns an empty node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// NewNumber creates a number leaf that is not attached to any token.
func NewNumber(v float64) *Node {
	return NewNode(nil, NewNumberValue(v))
}

// NewBool creates a boolean leaf that is not attached to any token.
func NewBool(v bool) *Node {
	return NewNode(nil, NewBoolValue(v))
}

// NewAtom creates an atom that is not attached to any token.
func NewAtom(name string) *Node {
	return NewNode(nil, NewAtomValue(name))
}

// NewListOf creates a list node holding the given children.
func NewListOf(children ...*Node) *Node {
	list := NewList(nil)
	for i := range children {
		_ = list.Push(children[i])
	}
	return list
}

// FromToken creates a leaf or atom node out of a number, boolean or
// identifier token.
func FromToken(tok *lexer.Token) (*Node, error) {
	switch tok.Type() {
	case lexer.TokenNumber:
		return NewNode(tok, NewNumberValue(tok.Number())), nil
	case lexer.TokenBoolean:
		return NewNode(tok, NewBoolValue(tok.Bool())), nil
	case lexer.TokenIdentifier:
		return NewNode(tok, NewAtomValue(tok.Text())), nil
	}
	return nil, errors.Errorf("token %v can't be used as a value", tok)
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := NewNode(tok, v)
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

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Number returns the value of a number leaf
func (n Node) Number() float64 {
	return n.Value().(float64)
}

// Bool returns the value of a bool leaf
func (n Node) Bool() bool {
	return n.Value().(bool)
}

// Name returns the name of an atom
func (n Node) Name() string {
	return n.Value().(string)
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.v.([]*Node)))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.Encode())
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		node.p = n
		return nil
	}
	return errNotAVector
}

// IsValue returns true if the node is a leaf or an atom
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsLeaf returns true if the node holds a number or a bool
func (n *Node) IsLeaf() bool {
	return n.nt == NodeTypeNumber || n.nt == NodeTypeBool
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Parent returns the list that holds the node, if any.
func (n *Node) Parent() *Node {
	return n.p
}
