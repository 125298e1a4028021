package main

import (
	"os"

	"github.com/xiam/listcmp/cmd/listcmp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
