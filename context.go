package sexpr

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/lexer"
	"github.com/xiam/sexpr-calc/parser"
)

var ctxID = uint64(0)

// ContextOption configures a Context
type ContextOption func(*Context) error

// WithOperators adds operators to the table, replacing any operator with
// the same name.
func WithOperators(ops ...Operator) ContextOption {
	return func(ctx *Context) error {
		st, err := newSymbolTable(ctx.st, ops...)
		if err != nil {
			return err
		}
		ctx.st = st
		return nil
	}
}

// WithCompatTokenizer selects the historical tokenizer, see lexer.Compat.
func WithCompatTokenizer() ContextOption {
	return func(ctx *Context) error {
		ctx.compat = true
		return nil
	}
}

// WithMaxDepth limits the nesting of parsed expressions. Zero means no
// limit.
func WithMaxDepth(n int) ContextOption {
	return func(ctx *Context) error {
		if n < 0 {
			return fmt.Errorf("max depth can't be negative: %d", n)
		}
		ctx.maxDepth = n
		return nil
	}
}

// WithLogger sets the logger for the context.
func WithLogger(l Logger) ContextOption {
	return func(ctx *Context) error {
		ctx.logger = l
		return nil
	}
}

// Context holds the operator table and the pipeline settings. A Context is
// not modified after NewContext returns and can be used from many goroutines
// at once.
type Context struct {
	id   uint64
	name string

	Parent *Context

	st *symbolTable

	compat   bool
	maxDepth int

	logger Logger
}

// NewContext creates a context. A nil parent starts from the built-in
// operator table and default settings; otherwise everything is inherited
// from parent and then changed by opts.
func NewContext(parent *Context, opts ...ContextOption) (*Context, error) {
	ctx := &Context{
		id:       atomic.AddUint64(&ctxID, 1),
		maxDepth: parser.DefaultMaxDepth,
	}
	if parent == nil {
		st, err := newSymbolTable(nil, defaultOperators...)
		if err != nil {
			return nil, err
		}
		ctx.st = st
	} else {
		ctx.Parent = parent
		ctx.name = parent.name
		ctx.st = parent.st
		ctx.compat = parent.compat
		ctx.maxDepth = parent.maxDepth
		ctx.logger = parent.logger
	}
	for _, opt := range opts {
		if err := opt(ctx); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

// Name sets a name that identifies the context in log output.
func (ctx *Context) Name(name string) *Context {
	ctx.name = name
	return ctx
}

func (ctx *Context) log() Logger {
	if ctx.logger != nil {
		return ctx.logger
	}
	return defaultLogger
}

// Operators returns the sorted names of the operators known to the context.
func (ctx *Context) Operators() []string {
	names := ctx.st.Names()
	sort.Strings(names)
	return names
}

// Operator looks up an operator by name.
func (ctx *Context) Operator(name string) (*Operator, error) {
	return ctx.st.Get(name)
}

// Tokenize splits text into tokens.
func (ctx *Context) Tokenize(text string) []lexer.Token {
	var opts []lexer.Option
	if ctx.compat {
		opts = append(opts, lexer.Compat())
	}
	tokens := lexer.Tokenize(text, opts...)
	ctx.log().Debugf("%v: %d tokens in %q", ctx, len(tokens), text)
	return tokens
}

// Parse builds the tree of a single bracketed expression.
func (ctx *Context) Parse(tokens []lexer.Token) (*ast.Node, error) {
	return parser.New(tokens, parser.MaxDepth(ctx.maxDepth)).Parse()
}

// Run tokenizes and parses text.
func (ctx *Context) Run(text string) (*ast.Node, error) {
	return ctx.Parse(ctx.Tokenize(text))
}

// Evaluate tokenizes, parses and interprets text.
func (ctx *Context) Evaluate(text string) (float64, error) {
	root, err := ctx.Run(text)
	if err != nil {
		return 0, err
	}
	return ctx.Interpret(root)
}

func (ctx *Context) String() string {
	return fmt.Sprintf("[%v]: %q", ctx.id, ctx.name)
}
