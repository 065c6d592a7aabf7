package parser

import (
	"github.com/pkg/errors"

	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/lexer"
)

// DefaultMaxDepth is the nesting limit used unless MaxDepth says otherwise.
const DefaultMaxDepth = 512

// Option configures a Parser
type Option func(*Parser)

// MaxDepth limits how deep expressions may nest. Zero disables the limit.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser builds a tree out of the tokens of a single bracketed expression.
type Parser struct {
	tokens   []lexer.Token
	maxDepth int
}

// New creates a parser for the given tokens
func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the list node that represents the expression. The tokens
// must hold exactly one balanced expression.
func (p *Parser) Parse() (*ast.Node, error) {
	size, err := ExpressionSize(p.tokens)
	if err != nil {
		return nil, err
	}
	if size != len(p.tokens) {
		return nil, errors.Wrapf(ErrMalformedExpression, "unexpected %v after the end of the expression", p.tokens[size])
	}
	return p.parseExpression(p.tokens, 1)
}

// parseExpression expects tokens to be a balanced span: "(" ... ")".
func (p *Parser) parseExpression(tokens []lexer.Token, depth int) (*ast.Node, error) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		line, col := tokens[0].Pos()
		return nil, errors.Wrapf(ErrNestingTooDeep, "expression at %d:%d exceeds %d levels", line, col, p.maxDepth)
	}

	root := ast.NewList(&tokens[0])

	inner := tokens[1 : len(tokens)-1]
	for i := 0; i < len(inner); i++ {
		tok := &inner[i]

		switch tok.Type() {
		case lexer.TokenStartExpression:
			size, err := ExpressionSize(inner[i:])
			if err != nil {
				return nil, err
			}
			node, err := p.parseExpression(inner[i:i+size], depth+1)
			if err != nil {
				return nil, err
			}
			if err := root.Push(node); err != nil {
				return nil, err
			}
			i += size - 1

		case lexer.TokenEndExpression:
			// spans are computed ahead, a stray ")" means they disagree
			return nil, errors.Wrapf(ErrMalformedExpression, "unexpected %v", tok)

		default:
			node, err := ast.FromToken(tok)
			if err != nil {
				return nil, errors.Wrap(ErrMalformedExpression, err.Error())
			}
			if err := root.Push(node); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

// Parse builds the tree of a bracketed token sequence using the default
// options.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	return New(tokens).Parse()
}
