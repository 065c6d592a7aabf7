package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node
func Print(w io.Writer, n *Node) {
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

	case NodeTypeNumber, NodeTypeBool, NodeTypeAtom:
		fmt.Fprintf(w, "%s\n", n.Encode())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ":nil"
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, child := range n.List() {
			nodes = append(nodes, encodeNode(child))
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case NodeTypeNumber, NodeTypeBool, NodeTypeAtom:
		return n.Encode()

	default:
		panic("unknown node type")
	}
}

// Interface converts a node into plain Go values: lists become
// []interface{}, numbers float64, bools bool and atoms string.
func Interface(n *Node) interface{} {
	if n == nil {
		return nil
	}
	if n.Type() == NodeTypeList {
		list := n.List()
		values := make([]interface{}, 0, len(list))
		for i := range list {
			values = append(values, Interface(list[i]))
		}
		return values
	}
	return n.Value()
}
