package lexer

import (
	"unicode"
)

type lexState func(*Lexer) lexState

var (
	isStartExpression = isTokenType(TokenStartExpression)
	isEndExpression   = isTokenType(TokenEndExpression)
)

// Option configures a Lexer
type Option func(*Lexer)

// Compat makes the lexer behave like the historical tokenizer: only the
// space character separates lexemes, and characters pending right before a
// "(" or at the end of the input are discarded instead of being classified.
func Compat() Option {
	return func(lx *Lexer) {
		lx.compat = true
	}
}

// New initializes a Lexer object
func New(in string, opts ...Option) *Lexer {
	lx := &Lexer{
		in:     []rune(in),
		tokens: []Token{},
		buf:    []rune{},
		line:   1,
		col:    1,
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in  []rune
	pos int

	compat bool

	tokens []Token

	buf []rune

	// position of the first rune in buf
	startLine int
	startCol  int

	// position of the last rune returned by next
	runeLine int
	runeCol  int

	// position of the next rune
	line int
	col  int
}

// Scan consumes the whole input and returns the tokens found in it. Scanning
// never fails: anything that is not a parenthesis or a boolean or a number
// becomes an identifier.
func (lx *Lexer) Scan() []Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

func (lx *Lexer) next() (rune, bool) {
	if lx.pos >= len(lx.in) {
		return rune(0), false
	}

	r := lx.in[lx.pos]
	lx.pos++

	lx.runeLine, lx.runeCol = lx.line, lx.col
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	return r, true
}

func (lx *Lexer) isSeparator(r rune) bool {
	if lx.compat {
		return r == ' '
	}
	return unicode.IsSpace(r)
}

func (lx *Lexer) accumulate(r rune) {
	if len(lx.buf) == 0 {
		lx.startLine, lx.startCol = lx.runeLine, lx.runeCol
	}
	lx.buf = append(lx.buf, r)
}

func (lx *Lexer) emit(lexeme string, line int, col int) {
	if tok, ok := classifyAt(lexeme, line, col); ok {
		lx.tokens = append(lx.tokens, *tok)
	}
}

// flush classifies whatever was accumulated and resets the accumulator.
func (lx *Lexer) flush() {
	lx.emit(string(lx.buf), lx.startLine, lx.startCol)
	lx.reset()
}

func (lx *Lexer) reset() {
	lx.buf = lx.buf[0:0]
}

func lexDefaultState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return lexEOF
	}

	switch {
	case isStartExpression(r):
		return lexStartExpression
	case isEndExpression(r):
		return lexEndExpression
	case lx.isSeparator(r):
		return lexSeparator
	default:
		lx.accumulate(r)
		return lexDefaultState
	}
}

func lexStartExpression(lx *Lexer) lexState {
	if lx.compat {
		lx.reset()
	} else {
		lx.flush()
	}
	lx.emit(string(lx.in[lx.pos-1]), lx.runeLine, lx.runeCol)
	return lexDefaultState
}

func lexEndExpression(lx *Lexer) lexState {
	lx.flush()
	lx.emit(string(lx.in[lx.pos-1]), lx.runeLine, lx.runeCol)
	return lexDefaultState
}

func lexSeparator(lx *Lexer) lexState {
	if len(lx.buf) > 0 {
		lx.flush()
	}
	return lexDefaultState
}

func lexEOF(lx *Lexer) lexState {
	if lx.compat {
		lx.reset()
		return nil
	}
	lx.flush()
	return nil
}

// Tokenize takes a string and returns all the tokens within it.
func Tokenize(in string, opts ...Option) []Token {
	return New(in, opts...).Scan()
}
