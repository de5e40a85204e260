// Package cons reads and writes S-expressions made of cons cells, integers,
// strings and symbols.
//
// Parse turns text into a tree of ast nodes and Render turns a tree back into
// its canonical text, where chains of pairs ending in nil are written in list
// notation:
//
//	(1 . (2 . nil))  =>  (1 2)
//	(1 2 . 3)        =>  (1 2 . 3)
package cons

import (
	"fmt"
	"io"

	"github.com/xiam/cons/ast"
	"github.com/xiam/cons/parser"
)

// Reader parses one expression from an io.Reader
type Reader struct {
	r io.Reader
}

// Parse reads one expression from in
func Parse(in []byte) (ast.Node, error) {
	return parser.Parse(in)
}

// ParseString reads one expression from s
func ParseString(s string) (ast.Node, error) {
	return parser.ParseString(s)
}

// Render returns the canonical text of a node. The nil node renders as an
// empty string.
func Render(n ast.Node) string {
	return ast.Encode(n)
}

// Canonicalize parses in and renders it back in canonical form.
func Canonicalize(in []byte) ([]byte, error) {
	n, err := Parse(in)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	return []byte(Render(n)), nil
}

// NewReader creates a Reader for r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads exactly one expression from the underlying reader
func (r *Reader) Parse() (ast.Node, error) {
	return parser.New(r.r).Parse()
}
