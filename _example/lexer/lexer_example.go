package main

import (
	"fmt"
	"log"

	"github.com/xiam/cons/lexer"
)

func main() {
	input := `
		(define
			(greet name)
			(concat "Hello " name) . 42)
	`

	tokens, err := lexer.TokenizeBytes([]byte(input))
	if err != nil {
		log.Fatal("lexer.TokenizeBytes:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
