package lexer

import (
	"math"
	"strconv"
)

const (
	lexemeTrue  = "true"
	lexemeFalse = "false"
)

// Classify converts a single lexeme into a token. The boolean is false when
// the lexeme is empty, in which case no token must be emitted.
//
// The order of the checks matters: booleans win over numbers and numbers win
// over identifiers, so "true" is never an identifier and "+" or "**", which
// are not numbers, always are.
func Classify(lexeme string) (*Token, bool) {
	return classifyAt(lexeme, 0, 0)
}

func classifyAt(lexeme string, line int, col int) (*Token, bool) {
	if lexeme == "" {
		return nil, false
	}

	switch lexeme {
	case lexemeTrue:
		return NewBooleanToken(lexeme, true, line, col), true
	case lexemeFalse:
		return NewBooleanToken(lexeme, false, line, col), true
	}

	if f64, ok := parseNumber(lexeme); ok {
		return NewNumberToken(lexeme, f64, line, col), true
	}

	if r := []rune(lexeme); len(r) == 1 {
		switch {
		case isStartExpression(r[0]):
			return NewToken(TokenStartExpression, lexeme, line, col), true
		case isEndExpression(r[0]):
			return NewToken(TokenEndExpression, lexeme, line, col), true
		}
	}

	return NewToken(TokenIdentifier, lexeme, line, col), true
}

// parseNumber accepts the lexeme only if the whole of it is a finite number.
func parseNumber(lexeme string) (float64, bool) {
	f64, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(f64) || math.IsInf(f64, 0) {
		return 0, false
	}
	return f64, true
}
