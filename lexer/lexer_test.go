package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTokenTypes(tokens []Token) []TokenType {
	tt := make([]TokenType, 0, len(tokens))
	for i := range tokens {
		tt = append(tt, tokens[i].tt)
	}
	return tt
}

func getTokenTexts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for i := range tokens {
		texts = append(texts, tokens[i].Text())
	}
	return texts
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{},
		},
		{
			`(+ 1 2)`,
			[]TokenType{
				TokenStartExpression,
				TokenIdentifier,
				TokenNumber,
				TokenNumber,
				TokenEndExpression,
			},
		},
		{
			`(- 4 (- 5 44))`,
			[]TokenType{
				TokenStartExpression,
				TokenIdentifier,
				TokenNumber,
				TokenStartExpression,
				TokenIdentifier,
				TokenNumber,
				TokenNumber,
				TokenEndExpression,
				TokenEndExpression,
			},
		},
		{
			`(eq true false)`,
			[]TokenType{
				TokenStartExpression,
				TokenIdentifier,
				TokenBoolean,
				TokenBoolean,
				TokenEndExpression,
			},
		},
		{
			`(**    2     3)`,
			[]TokenType{
				TokenStartExpression,
				TokenIdentifier,
				TokenNumber,
				TokenNumber,
				TokenEndExpression,
			},
		},
		{
			"(max\n\t1\r\n2)",
			[]TokenType{
				TokenStartExpression,
				TokenIdentifier,
				TokenNumber,
				TokenNumber,
				TokenEndExpression,
			},
		},
		{
			`(()))`,
			[]TokenType{
				TokenStartExpression,
				TokenStartExpression,
				TokenEndExpression,
				TokenEndExpression,
				TokenEndExpression,
			},
		},
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		assert.NotNil(t, tokens)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens := Tokenize(`(+ 1 2)`)

	expected := []*Token{
		NewToken(TokenStartExpression, "(", 0, 0),
		NewToken(TokenIdentifier, "+", 0, 0),
		NewNumberToken("1", 1, 0, 0),
		NewNumberToken("2", 2, 0, 0),
		NewToken(TokenEndExpression, ")", 0, 0),
	}

	require.Len(t, tokens, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(tokens[i]), "token %d: expected %v, got %v", i, expected[i], tokens[i])
	}
}

func TestTokenizePendingLexemes(t *testing.T) {
	testCases := []struct {
		In     string
		Compat bool
		Out    []string
	}{
		{`abc(`, false, []string{"abc", "("}},
		{`abc(`, true, []string{"("}},
		{`(+ 1 2) 3`, false, []string{"(", "+", "1", "2", ")", "3"}},
		{`(+ 1 2) 3`, true, []string{"(", "+", "1", "2", ")"}},
		{`1`, false, []string{"1"}},
		{`1`, true, []string{}},
		{"(+\t1 2)", false, []string{"(", "+", "1", "2", ")"}},
		{"(+\t1 2)", true, []string{"(", "+\t1", "2", ")"}},
		{`(+ 1 foo(- 2 1))`, false, []string{"(", "+", "1", "foo", "(", "-", "2", "1", ")", ")"}},
		{`(+ 1 foo(- 2 1))`, true, []string{"(", "+", "1", "(", "-", "2", "1", ")", ")"}},
	}

	for _, tc := range testCases {
		var opts []Option
		if tc.Compat {
			opts = append(opts, Compat())
		}
		tokens := Tokenize(tc.In, opts...)
		assert.Equal(t, tc.Out, getTokenTexts(tokens), "input: %q (compat: %v)", tc.In, tc.Compat)
	}
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"(+ 1 2)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 4}, {1, 6}, {1, 7},
			},
		},
		{
			"(+ 1\n\t2)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 4},
				{2, 2}, {2, 3},
			},
		},
		{
			"\n\n(max 10)",
			[][2]int{
				{3, 1}, {3, 2}, {3, 6}, {3, 8},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens))
	}
}

func TestTokenString(t *testing.T) {
	tokens := Tokenize(`(max 1.5 true)`)
	require.Len(t, tokens, 5)

	assert.Equal(t, `(:start_expression "(" [1 1])`, tokens[0].String())
	assert.Equal(t, `(:identifier "max" [1 2])`, tokens[1].String())
	assert.Equal(t, `(:number 1.5 [1 6])`, tokens[2].String())
	assert.Equal(t, `(:boolean true [1 10])`, tokens[3].String())
	assert.Equal(t, "end_expression", tokens[4].Type().String())
	assert.Equal(t, "invalid", TokenType(99).String())
}
