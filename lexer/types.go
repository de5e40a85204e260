package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota // Never emitted, names unknown types
	TokenOpenExpression                   // Open parenthesis: "("
	TokenCloseExpression                  // Close parenthesis: ")"
	TokenNewLine                          // Newline: "\n"
	TokenWhitespace                       // Space or tab
	TokenWord                             // Letter ([a-zA-Z]) followed by letters or digits
	TokenInteger                          // Digits
	TokenString                           // Quoted string, the lexeme has no quotes
	TokenDot                              // Dot: "."
	TokenEOF                              // End of file

	// Character class of string delimiters, the lexer emits TokenString instead.
	tokenDoubleQuote
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenNewLine:         []rune{'\n'},
	tokenDoubleQuote:     []rune{'"'},
	TokenWhitespace:      []rune(" \t"),
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	TokenInteger:         []rune("0123456789"),
	TokenDot:             []rune{'.'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenNewLine:         "newline",
	TokenWhitespace:      "separator",
	TokenWord:            "word",
	TokenInteger:         "integer",
	TokenString:          "string",
	TokenDot:             "dot",
	TokenEOF:             "EOF",
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
