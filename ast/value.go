package ast

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol name")
	ErrInvalidText   = errors.New("string contains a double quote")
)

// IsLetter reports whether r is an ASCII letter
func IsLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsDigit reports whether r is an ASCII digit
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsIdentifier reports whether name can be read back as a symbol: an ASCII
// letter followed by letters or digits, other than "nil".
func IsIdentifier(name string) bool {
	if name == "" || name == NilName {
		return false
	}
	for i, r := range name {
		if IsLetter(r) || (i > 0 && IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// Validate walks the tree and returns an error for the first atom that can't
// be written in a form the parser reads back.
func Validate(n Node) error {
	for n != nil {
		switch v := n.(type) {
		case *Pair:
			if err := Validate(v.Head); err != nil {
				return err
			}
			n = v.Tail
			continue

		case *Symbol:
			if !IsIdentifier(v.Name) {
				return fmt.Errorf("%w: %q", ErrInvalidSymbol, v.Name)
			}

		case *Text:
			if strings.ContainsRune(v.Value, '"') {
				return fmt.Errorf("%w: %q", ErrInvalidText, v.Value)
			}
		}
		return nil
	}
	return nil
}
