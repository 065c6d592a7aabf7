package lexer

import (
	"fmt"
	"strconv"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	num float64
	b   bool

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// NewNumberToken creates a lexical unit of type number
func NewNumberToken(lexeme string, v float64, line int, col int) *Token {
	tok := NewToken(TokenNumber, lexeme, line, col)
	tok.num = v
	return tok
}

// NewBooleanToken creates a lexical unit of type boolean
func NewBooleanToken(lexeme string, v bool, line int, col int) *Token {
	tok := NewToken(TokenBoolean, lexeme, line, col)
	tok.b = v
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Number returns the numeric payload of a token of type number
func (t Token) Number() float64 {
	return t.num
}

// Bool returns the payload of a token of type boolean
func (t Token) Bool() bool {
	return t.b
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Equal compares type and payload, ignoring the position.
func (t Token) Equal(o Token) bool {
	if t.tt != o.tt {
		return false
	}
	switch t.tt {
	case TokenNumber:
		return t.num == o.num
	case TokenBoolean:
		return t.b == o.b
	case TokenIdentifier:
		return t.lexeme == o.lexeme
	}
	return true
}

func (t Token) String() string {
	switch t.tt {
	case TokenNumber:
		return fmt.Sprintf("(:%v %s [%d %d])", t.tt, strconv.FormatFloat(t.num, 'g', -1, 64), t.line, t.col)
	case TokenBoolean:
		return fmt.Sprintf("(:%v %t [%d %d])", t.tt, t.b, t.line, t.col)
	}
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
