package lexer

import (
	"errors"
)

var (
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidInput       = errors.New("invalid input")
)
