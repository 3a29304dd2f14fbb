package main

import (
	"os"

	"github.com/ism7788/math-practice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
