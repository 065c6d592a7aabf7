package main

import (
	"fmt"

	"github.com/xiam/sexpr-calc/lexer"
)

func main() {
	input := `
		(max
			(** 2 10)
			(- 1500 3.5 true)
		)
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
