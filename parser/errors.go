package parser

import (
	"github.com/pkg/errors"
)

// Error kinds reported by ExpressionSize and Parse. Returned errors wrap one
// of these values and can be matched with errors.Is.
var (
	ErrMalformedExpression  = errors.New("malformed expression")
	ErrUnbalancedExpression = errors.New("unbalanced expression")
	ErrNestingTooDeep       = errors.New("expression nesting too deep")
)
