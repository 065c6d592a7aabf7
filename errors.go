package sexpr

import (
	"github.com/pkg/errors"

	"github.com/xiam/sexpr-calc/parser"
)

// Structural errors, reported while parsing.
var (
	ErrMalformedExpression  = parser.ErrMalformedExpression
	ErrUnbalancedExpression = parser.ErrUnbalancedExpression
	ErrNestingTooDeep       = parser.ErrNestingTooDeep
)

// Evaluation errors.
var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrArityMismatch   = errors.New("arity mismatch")
)
