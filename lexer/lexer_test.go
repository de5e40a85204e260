package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		``,

		`1`,

		`nil`,

		`(1 . 1)`,

		`(1 2 . 3)`,

		`(1 a "b" (1 . 2))`,

		`((1) 2 ())`,

		`(foo
			a b1
			"g
			hi"
		)`,

		`("😊" x)`,
	}

	for i := range testCases {
		tokens, err := TokenizeBytes([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenInteger,
				TokenEOF,
			},
		},
		{
			`12abc3`,
			[]TokenType{
				TokenInteger,
				TokenWord,
				TokenEOF,
			},
		},
		{
			`(1 . "a")`,
			[]TokenType{
				TokenOpenExpression,
				TokenInteger,
				TokenWhitespace,
				TokenDot,
				TokenWhitespace,
				TokenString,
				TokenCloseExpression,
				TokenEOF,
			},
		},
		{
			"(a\n\t\t(b))",
			[]TokenType{
				TokenOpenExpression,
				TokenWord,
				TokenNewLine,
				TokenWhitespace,
				TokenOpenExpression,
				TokenWord,
				TokenCloseExpression,
				TokenCloseExpression,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []*Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].Type())
		}
		return tt
	}

	for i := range testCases {
		tokens, err := TokenizeBytes([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens))
	}
}

func TestTokenText(t *testing.T) {
	tokens, err := TokenizeBytes([]byte("(abc1 \"x y\"\n 42 \"\")"))
	require.NoError(t, err)
	require.Len(t, tokens, 11)

	expected := []*Token{
		NewToken(TokenOpenExpression, "(", 1, 1),
		NewToken(TokenWord, "abc1", 1, 2),
		NewToken(TokenWhitespace, " ", 1, 6),
		NewToken(TokenString, "x y", 1, 7),
		NewToken(TokenNewLine, "\n", 1, 12),
		NewToken(TokenWhitespace, " ", 2, 1),
		NewToken(TokenInteger, "42", 2, 2),
		NewToken(TokenWhitespace, " ", 2, 4),
		NewToken(TokenString, "", 2, 5),
	}
	assert.Equal(t, expected, tokens[:9])

	tokens, err = TokenizeBytes([]byte("(\"a\x00b\")"))
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, NewToken(TokenString, "a\x00b", 1, 2), tokens[1])
}

func TestLexerErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Line int
		Col  int
	}{
		{`"abc`, ErrUnterminatedString, 1, 1},
		{`(1 "abc)`, ErrUnterminatedString, 1, 4},
		{`(1 - 2)`, ErrUnexpectedChar, 1, 4},
		{"(1\n  [2])", ErrUnexpectedChar, 2, 3},
		{"(a\r\n)", ErrUnexpectedChar, 1, 3},
		{"(1 \x00)", ErrUnexpectedChar, 1, 4},
		{"\xff", ErrInvalidInput, 1, 1},
	}

	for i := range testCases {
		lx := New(bytes.NewReader([]byte(testCases[i].In)))

		var err error
		for err == nil {
			var tok *Token
			tok, err = lx.Next()
			if err == nil && tok.Is(TokenEOF) {
				break
			}
		}

		assert.ErrorIs(t, err, testCases[i].Err, "input: %q", testCases[i].In)

		line, col := lx.Pos()
		assert.Equal(t, testCases[i].Line, line, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Col, col, "input: %q", testCases[i].In)

		// errors are sticky
		_, again := lx.Next()
		assert.ErrorIs(t, again, testCases[i].Err)
	}
}

func TestLexerEOF(t *testing.T) {
	lx := New(bytes.NewReader([]byte(`a`)))

	tok, err := lx.Next()
	require.NoError(t, err)
	assert.True(t, tok.Is(TokenWord))

	for i := 0; i < 3; i++ {
		tok, err = lx.Next()
		require.NoError(t, err)
		assert.True(t, tok.Is(TokenEOF))
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken(TokenWord, "abc", 2, 5)
	assert.Equal(t, `(:word "abc" [2 5])`, tok.String())
	assert.Equal(t, "invalid", TokenType(200).String())
	assert.Equal(t, "invalid", tokenDoubleQuote.String())
}
