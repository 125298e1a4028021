package main

import (
	"fmt"
	"log"

	"github.com/xiam/listcmp/lexer"
)

func main() {
	input := `[1,[2,[3,[4,[5,6,7]]]],8,9]`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, col: %d)\n\t-> %q\n\n", i, tt, col, lexeme)
	}
}
