package sexpr

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Variadic as MaxArity means there is no upper limit on the arguments.
const Variadic = -1

// Function implements an operator. It is only called with an argument count
// that satisfies the operator's arity.
type Function func(args []float64) float64

// Operator is an entry of the operator table.
type Operator struct {
	Name     string
	MinArity int
	MaxArity int
	Fn       Function
}

func (op Operator) validate() error {
	if op.Name == "" {
		return errors.New("operator name can't be empty")
	}
	if op.Fn == nil {
		return errors.Errorf("operator %q has no function", op.Name)
	}
	if op.MinArity < 0 || (op.MaxArity != Variadic && op.MaxArity < op.MinArity) {
		return errors.Errorf("operator %q has an invalid arity [%d, %d]", op.Name, op.MinArity, op.MaxArity)
	}
	return nil
}

func (op Operator) arity() string {
	switch {
	case op.MaxArity == Variadic:
		return fmt.Sprintf("at least %d", op.MinArity)
	case op.MinArity == op.MaxArity:
		return fmt.Sprintf("exactly %d", op.MinArity)
	}
	return fmt.Sprintf("between %d and %d", op.MinArity, op.MaxArity)
}

// Call applies the operator to args after checking the arity.
func (op Operator) Call(args []float64) (float64, error) {
	if len(args) < op.MinArity || (op.MaxArity != Variadic && len(args) > op.MaxArity) {
		return 0, errors.Wrapf(ErrArityMismatch, "%q expects %s arguments, got %d", op.Name, op.arity(), len(args))
	}
	return op.Fn(args), nil
}

// fold combines the arguments from left to right. A single argument is
// returned as is, so (- 5) is 5 and not -5.
func fold(fn func(a, b float64) float64) Function {
	return func(args []float64) float64 {
		acc := args[0]
		for _, v := range args[1:] {
			acc = fn(acc, v)
		}
		return acc
	}
}

var defaultOperators = []Operator{
	{
		Name:     "+",
		MinArity: 1,
		MaxArity: Variadic,
		Fn:       fold(func(a, b float64) float64 { return a + b }),
	},
	{
		Name:     "-",
		MinArity: 1,
		MaxArity: Variadic,
		Fn:       fold(func(a, b float64) float64 { return a - b }),
	},
	{
		Name:     "**",
		MinArity: 2,
		MaxArity: 2,
		Fn: func(args []float64) float64 {
			return math.Pow(args[0], args[1])
		},
	},
	{
		Name:     "max",
		MinArity: 1,
		MaxArity: Variadic,
		Fn:       fold(math.Max),
	},
	{
		Name:     "min",
		MinArity: 1,
		MaxArity: Variadic,
		Fn:       fold(math.Min),
	},
}

// DefaultOperators returns a copy of the built-in operator table.
func DefaultOperators() []Operator {
	ops := make([]Operator, len(defaultOperators))
	copy(ops, defaultOperators)
	return ops
}
