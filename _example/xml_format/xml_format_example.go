package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/cons/ast"
	"github.com/xiam/cons/parser"
)

func printTree(node ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch v := node.(type) {
	case nil:
		fmt.Printf("%s<nil/>\n", indent)
	case *ast.Pair:
		fmt.Printf("%s<%s>\n", indent, v.Type())
		printIndentedTree(v.Head, indentationLevel+1)
		printIndentedTree(v.Tail, indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, v.Type())
	default:
		fmt.Printf("%s<%s>%v</%s>\n", indent, v.Type(), v, v.Type())
	}
}

func main() {
	input := `(fna (fnb (89 A B (67 . 3))) (fnc 66 3 53 "Hello world!"))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
