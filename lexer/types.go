package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenStartExpression           // Open parenthesis: "("
	TokenEndExpression             // Close parenthesis: ")"
	TokenNumber                    // Anything strconv.ParseFloat accepts: 1, -2.5, 1e3
	TokenBoolean                   // Literal "true" or "false"
	TokenIdentifier                // Everything else: +, -, **, max
)

var tokenValues = map[TokenType][]rune{
	TokenStartExpression: []rune{'('},
	TokenEndExpression:   []rune{')'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenStartExpression: "start_expression",
	TokenEndExpression:   "end_expression",
	TokenNumber:          "number",
	TokenBoolean:         "boolean",
	TokenIdentifier:      "identifier",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}
