package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/xiam/cons/ast"
	"github.com/xiam/cons/lexer"
)

// Parser reads one expression from a stream of tokens. It looks at most one
// token ahead and never backtracks.
type Parser struct {
	lx *lexer.Lexer

	nextTok *lexer.Token
}

// New creates a parser that reads from r
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// Parse reads exactly one expression followed by optional whitespace. The
// returned node is nil when the expression is nil. On error the returned
// node is always nil and the error is an *Error.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !tok.Is(lexer.TokenEOF) {
		return nil, tokenError(tok, ErrTrailingInput)
	}

	return node, nil
}

// read returns the next meaningful token, whitespace is skipped.
func (p *Parser) read() (*lexer.Token, error) {
	for {
		tok, err := p.lx.Next()
		if err != nil {
			line, col := p.lx.Pos()
			return nil, &Error{Line: line, Col: col, Err: err}
		}

		switch tok.Type() {
		case lexer.TokenWhitespace, lexer.TokenNewLine:
			continue
		}
		return tok, nil
	}
}

func (p *Parser) peek() (*lexer.Token, error) {
	if p.nextTok != nil {
		return p.nextTok, nil
	}

	tok, err := p.read()
	if err != nil {
		return nil, err
	}

	p.nextTok = tok
	return p.nextTok, nil
}

func (p *Parser) next() (*lexer.Token, error) {
	if p.nextTok != nil {
		tok := p.nextTok
		p.nextTok = nil
		return tok, nil
	}

	return p.read()
}

// skip drops a token already returned by peek
func (p *Parser) skip() {
	p.nextTok = nil
}

func (p *Parser) expect(tt lexer.TokenType) (*lexer.Token, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.TokenEOF) {
		return nil, tokenError(tok, ErrUnexpectedEOF)
	}
	if !tok.Is(tt) {
		return nil, tokenError(tok, ErrUnexpectedToken)
	}
	return tok, nil
}

func tokenError(tok *lexer.Token, err error) *Error {
	line, col := tok.Pos()
	return &Error{Line: line, Col: col, Token: tok, Err: err}
}

// parseExpr reads an integer, an identifier, a string or a parenthesized pair.
func (p *Parser) parseExpr() (ast.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type() {
	case lexer.TokenOpenExpression:
		return p.parsePair()

	case lexer.TokenInteger:
		return expectInteger(tok)

	case lexer.TokenWord:
		// "nil" reads as the nil node
		return ast.NewSymbol(tok.Text()), nil

	case lexer.TokenString:
		return ast.NewText(tok.Text()), nil

	case lexer.TokenEOF:
		return nil, tokenError(tok, ErrUnexpectedEOF)
	}

	return nil, tokenError(tok, ErrUnexpectedToken)
}

// parsePair reads what follows an open parenthesis: a dotted pair or a list.
func (p *Parser) parsePair() (ast.Node, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.TokenCloseExpression) {
		p.skip()
		return ast.NewPair(nil, nil), nil
	}

	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	tail, err := p.parseRemainder()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenCloseExpression); err != nil {
		return nil, err
	}

	return ast.NewPair(head, tail), nil
}

// parseRemainder reads the tail of a pair: either ". expr", nothing before
// the closing parenthesis, or more elements that become nested pairs.
func (p *Parser) parseRemainder() (ast.Node, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type() {
	case lexer.TokenDot:
		p.skip()
		return p.parseExpr()

	case lexer.TokenCloseExpression:
		return nil, nil
	}

	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	tail, err := p.parseRemainder()
	if err != nil {
		return nil, err
	}

	return ast.NewPair(head, tail), nil
}

func expectInteger(tok *lexer.Token) (ast.Node, error) {
	u64, err := strconv.ParseUint(tok.Text(), 10, 64)
	if err != nil {
		return nil, tokenError(tok, ErrIntegerOverflow)
	}
	return ast.NewInteger(u64), nil
}

// Parse reads one expression from in
func Parse(in []byte) (ast.Node, error) {
	return New(bytes.NewReader(in)).Parse()
}

// ParseString reads one expression from s
func ParseString(s string) (ast.Node, error) {
	return New(strings.NewReader(s)).Parse()
}
