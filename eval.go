package sexpr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/sexpr-calc/ast"
)

// Interpret evaluates a parsed expression. The first element of every list
// names the operator, the rest are its operands: numbers, booleans (1 and 0)
// or nested expressions.
func (ctx *Context) Interpret(node *ast.Node) (float64, error) {
	if node == nil || node.Type() != ast.NodeTypeList {
		return 0, errors.Wrapf(ErrInvalidOperand, "expected an expression, got %v", node)
	}
	return ctx.evalExpression(node)
}

func (ctx *Context) evalExpression(node *ast.Node) (float64, error) {
	list := node.List()
	if len(list) == 0 {
		return 0, errors.Wrapf(ErrMalformedExpression, "empty expression%s", position(node))
	}

	head := list[0]
	if head.Type() != ast.NodeTypeAtom {
		return 0, errors.Wrapf(ErrUnknownOperator, "expected an operator name, got %s%s", ast.Encode(head), position(head))
	}

	op, err := ctx.st.Get(head.Name())
	if err != nil {
		return 0, at(err, head)
	}

	args := make([]float64, 0, len(list)-1)
	for _, operand := range list[1:] {
		v, err := ctx.evalOperand(operand)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}

	result, err := op.Call(args)
	if err != nil {
		return 0, at(err, head)
	}

	ctx.log().Debugf("%v: (%s %v) = %v", ctx, op.Name, args, result)
	return result, nil
}

func (ctx *Context) evalOperand(node *ast.Node) (float64, error) {
	switch node.Type() {
	case ast.NodeTypeList:
		return ctx.evalExpression(node)
	case ast.NodeTypeNumber:
		return node.Number(), nil
	case ast.NodeTypeBool:
		if node.Bool() {
			return 1, nil
		}
		return 0, nil
	case ast.NodeTypeAtom:
		return 0, errors.Wrapf(ErrInvalidOperand, "%q is not a value%s", node.Name(), position(node))
	}
	panic("unreachable")
}

func position(node *ast.Node) string {
	tok := node.Token()
	if tok == nil {
		return ""
	}
	line, col := tok.Pos()
	return fmt.Sprintf(" at %d:%d", line, col)
}

func at(err error, node *ast.Node) error {
	tok := node.Token()
	if tok == nil {
		return err
	}
	line, col := tok.Pos()
	return errors.Wrapf(err, "at %d:%d", line, col)
}
