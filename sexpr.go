// Package sexpr tokenizes, parses and evaluates prefix arithmetic
// expressions such as (+ 1 (** 2 3)).
package sexpr

import (
	"io"
	"io/ioutil"

	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/lexer"
)

var defaultContext *Context

func init() {
	ctx, err := NewContext(nil)
	if err != nil {
		panic(err)
	}
	defaultContext = ctx.Name("root")
}

// Tokenize splits text into tokens.
func Tokenize(text string) []lexer.Token {
	return defaultContext.Tokenize(text)
}

// Parse builds the tree of a single bracketed expression out of its tokens.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	return defaultContext.Parse(tokens)
}

// Run tokenizes and parses text.
func Run(text string) (*ast.Node, error) {
	return defaultContext.Run(text)
}

// Interpret evaluates a parsed expression.
func Interpret(node *ast.Node) (float64, error) {
	return defaultContext.Interpret(node)
}

// Evaluate tokenizes, parses and interprets text.
func Evaluate(text string) (float64, error) {
	return defaultContext.Evaluate(text)
}

// Reader reads a whole expression from an io.Reader.
type Reader struct {
	r   io.Reader
	ctx *Context
}

// NewReader creates a Reader that uses ctx, or the default context if ctx is
// nil.
func NewReader(r io.Reader, ctx *Context) *Reader {
	if ctx == nil {
		ctx = defaultContext
	}
	return &Reader{r: r, ctx: ctx}
}

func (r *Reader) read() (string, error) {
	buf, err := ioutil.ReadAll(r.r)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Parse reads all the input and parses it.
func (r *Reader) Parse() (*ast.Node, error) {
	text, err := r.read()
	if err != nil {
		return nil, err
	}
	return r.ctx.Run(text)
}

// Evaluate reads all the input and evaluates it.
func (r *Reader) Evaluate() (float64, error) {
	text, err := r.read()
	if err != nil {
		return 0, err
	}
	return r.ctx.Evaluate(text)
}
