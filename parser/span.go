package parser

import (
	"github.com/pkg/errors"

	"github.com/xiam/sexpr-calc/lexer"
)

// ExpressionSize returns how many tokens form the balanced expression that
// starts at tokens[0], both parentheses included.
func ExpressionSize(tokens []lexer.Token) (int, error) {
	if len(tokens) == 0 {
		return 0, errors.Wrap(ErrMalformedExpression, `expected "(", got end of input`)
	}
	if !tokens[0].Is(lexer.TokenStartExpression) {
		return 0, errors.Wrapf(ErrMalformedExpression, `expected "(", got %v`, tokens[0])
	}

	depth := 1
	for i := 1; i < len(tokens); i++ {
		switch tokens[i].Type() {
		case lexer.TokenStartExpression:
			depth++
		case lexer.TokenEndExpression:
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}

	line, col := tokens[0].Pos()
	return 0, errors.Wrapf(ErrUnbalancedExpression, "expression opened at %d:%d is never closed", line, col)
}
