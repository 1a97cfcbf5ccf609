package main

import (
	"os"

	"github.com/ankhbayar/mcqgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
