package lexer

import (
	"bytes"
	"fmt"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

const scannerErrNUL = "invalid character NUL"

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isNewLine     = isTokenType(TokenNewLine)
	isDoubleQuote = isTokenType(tokenDoubleQuote)
	isWhitespace  = isTokenType(TokenWhitespace)

	isWord    = isTokenType(TokenWord)
	isInteger = isTokenType(TokenInteger)

	isDot = isTokenType(TokenDot)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		in:  &scanner.Scanner{},
		buf: []rune{},
	}

	lx.in.Init(r)
	lx.in.Error = func(s *scanner.Scanner, msg string) {
		// NUL is valid inside strings, lexDefaultState rejects it elsewhere
		if msg == scannerErrNUL {
			return
		}
		if lx.lastErr == nil {
			lx.lastErr = fmt.Errorf("%w: %s", ErrInvalidInput, msg)
		}
	}

	return lx
}

// Lexer represents a lexical analyzer. Tokens are produced one at a time by
// Next, the lexer reads from the input only as far as the token it returns.
type Lexer struct {
	in *scanner.Scanner

	tok     *Token
	lastErr error

	buf []rune

	line int
	col  int
}

// Next returns the next token from the input. Once the input is exhausted Next
// keeps returning a token of type TokenEOF. Errors are sticky.
func (lx *Lexer) Next() (*Token, error) {
	if lx.lastErr != nil {
		return nil, lx.lastErr
	}

	pos := lx.in.Pos()
	lx.line, lx.col = pos.Line, pos.Column
	lx.tok = nil

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return lx.tok, nil
}

// Pos returns the line and column where the last token (or the failed one)
// starts.
func (lx *Lexer) Pos() (int, int) {
	return lx.line, lx.col
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = NewToken(tt, string(lx.buf), lx.line, lx.col)
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if lx.lastErr != nil {
		return rune(0), lx.lastErr
	}
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isDot(r):
		return lexEmit(TokenDot)
	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace)

	case isDoubleQuote(r):
		return lexString
	case isWord(r):
		return lexCollectWord
	case isInteger(r):
		return lexCollectStream(TokenInteger)

	}

	return lexStateError(fmt.Errorf("%w %q", ErrUnexpectedChar, r))
}

func lexString(lx *Lexer) lexState {
	// drop the opening quote
	lx.buf = lx.buf[0:0]

	for {
		r, err := lx.next()
		if err == io.EOF {
			return lexStateError(ErrUnterminatedString)
		}
		if err != nil {
			return lexStateError(err)
		}
		if isDoubleQuote(r) {
			lx.buf = lx.buf[:len(lx.buf)-1]
			return lexEmit(TokenString)
		}
	}
}

func lexCollectWord(lx *Lexer) lexState {
	for p := lx.peek(); isWord(p) || isInteger(p); p = lx.peek() {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexEmit(TokenWord)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return nil
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexEmit(TokenEOF)
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// TokenizeBytes takes an array of bytes and returns all the tokens within it,
// including the final TokenEOF, or an error if a token can't be identified.
func TokenizeBytes(in []byte) ([]*Token, error) {
	return Tokenize(bytes.NewReader(in))
}

// Tokenize reads r until EOF and returns all the tokens within it.
func Tokenize(r io.Reader) ([]*Token, error) {
	tokens := []*Token{}

	lx := New(r)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
