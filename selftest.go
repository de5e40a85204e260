package cons

import (
	"log"

	"github.com/xiam/cons/ast"
)

type renderCase struct {
	In  ast.Node
	Out string
}

type parseCase struct {
	In  string
	Out string
}

var (
	one = ast.NewInteger(1)

	renderCases = []renderCase{
		{ast.NewInteger(123), `123`},
		{ast.NewText("abc"), `"abc"`},
		{ast.NewSymbol("xyz"), `xyz`},
		{ast.NewPair(nil, nil), `()`},
		{ast.NewPair(one, nil), `(1)`},
		{ast.NewPair(nil, one), `(nil . 1)`},
		{ast.NewPair(one, one), `(1 . 1)`},
		{ast.NewPair(one, ast.NewPair(one, nil)), `(1 1)`},
		{ast.NewPair(one, ast.NewPair(nil, one)), `(1 nil . 1)`},
	}

	parseCases = []parseCase{
		{`1`, `1`},
		{`abc`, `abc`},
		{`"x"`, `"x"`},
		{` 1 `, `1`},
		{`(1 . 1)`, `(1 . 1)`},
		{`(1)`, `(1)`},
		{`(1 2)`, `(1 2)`},
		{`(1 2 . 3)`, `(1 2 . 3)`},
		{`(1 a "b" (1 . 2))`, `(1 a "b" (1 . 2))`},
		{`(1 . (2 3))`, `(1 2 3)`},
		{`(1 . (2 . nil))`, `(1 2)`},
		{`((1) 2 ())`, `((1) 2 ())`},
	}
)

// SelfTest renders and parses a fixed set of expressions and logs every
// result that differs from the expected text. It returns true when all of
// them match.
func SelfTest(logger *log.Logger) bool {
	ok := true

	for _, tc := range renderCases {
		if result := Render(tc.In); result != tc.Out {
			logger.Printf("Error: rendering resulted in %q, not %q", result, tc.Out)
			ok = false
		}
	}

	for _, tc := range parseCases {
		tree, err := ParseString(tc.In)
		if err != nil {
			logger.Printf("Error: parsing %q failed: %v, expecting %q", tc.In, err, tc.Out)
			ok = false
			continue
		}
		if result := Render(tree); result != tc.Out {
			logger.Printf("Error: parsing %q resulted in %q, not %q", tc.In, result, tc.Out)
			ok = false
		}
	}

	return ok
}
