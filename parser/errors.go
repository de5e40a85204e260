package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/cons/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("unexpected input after expression")
	ErrIntegerOverflow = errors.New("integer out of range")
)

// Error is returned by the parser on malformed input. It wraps one of the
// sentinel errors of this package or of the lexer package.
type Error struct {
	Line int
	Col  int

	// Token is the offending token, nil when the lexer failed.
	Token *lexer.Token

	Err error
}

func (e *Error) Error() string {
	if e.Token != nil && !e.Token.Is(lexer.TokenEOF) {
		return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Col, e.Err, e.Token.Text())
	}
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
