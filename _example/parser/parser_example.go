package main

import (
	"log"
	"os"

	"github.com/xiam/listcmp/ast"
	"github.com/xiam/listcmp/parser"
)

func main() {
	input := `[[1],[2,3,4],[],10]`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Fprint(os.Stdout, root)
}
