package ast

import (
	"strconv"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeNumber:
		return strconv.FormatFloat(n.v.(float64), 'g', -1, 64)
	case NodeTypeBool:
		return strconv.FormatBool(n.v.(bool))
	case NodeTypeAtom:
		return n.v.(string)
	}

	panic("unreachable")
}

// NewNumberValue creates a value of type number
func NewNumberValue(v float64) Valuer {
	return newNodeValue(NodeTypeNumber, v)
}

// NewBoolValue creates a value of type bool
func NewBoolValue(v bool) Valuer {
	return newNodeValue(NodeTypeBool, v)
}

// NewAtomValue creates a value of type atom, used for operator names
func NewAtomValue(v string) Valuer {
	return newNodeValue(NodeTypeAtom, v)
}

var _ = Valuer(&nodeValue{})
