package main

import (
	"fmt"
	"log"
	"os"

	sexpr "github.com/xiam/sexpr-calc"
	"github.com/xiam/sexpr-calc/ast"
)

func main() {
	input := `(max (** 2 10) (- 1500 3.5 true) (min 7 8))`

	root, err := sexpr.Run(input)
	if err != nil {
		log.Fatal("sexpr.Run:", err)
	}

	ast.Print(os.Stdout, root)

	value, err := sexpr.Interpret(root)
	if err != nil {
		log.Fatal("sexpr.Interpret:", err)
	}
	fmt.Printf("= %v\n", value)
}
