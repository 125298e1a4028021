package main

import (
	"fmt"
	"log"

	"github.com/xiam/listcmp"
)

func main() {
	pairs := [][2]string{
		{`[1,1,3,1,1]`, `[1,1,5,1,1]`},
		{`[[1],[2,3,4]]`, `[[1],4]`},
		{`[9]`, `[[8,7,6]]`},
		{`[[[3]]]`, `[3]`},
	}

	for _, p := range pairs {
		o, err := listcmp.CompareStrings(p[0], p[1])
		if err != nil {
			log.Fatal("listcmp.CompareStrings:", err)
		}
		fmt.Printf("%s vs %s: %v\n", p[0], p[1], o)
	}
}
