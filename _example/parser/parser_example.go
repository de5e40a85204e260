package main

import (
	"log"
	"os"

	"github.com/xiam/cons/ast"
	"github.com/xiam/cons/parser"
)

func main() {
	input := `(fna (fnb (89 A B (67 . 3))) (fnc 66 3 53 "Hello world!" . nil))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, root)
}
