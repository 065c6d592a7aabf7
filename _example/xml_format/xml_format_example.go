package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/lexer"
	"github.com/xiam/sexpr-calc/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node.Value(), node.Type())
}

func main() {
	input := `(max (** 2 10) (- 1500 3.5 true) (min 7 8))`

	root, err := parser.Parse(lexer.Tokenize(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
