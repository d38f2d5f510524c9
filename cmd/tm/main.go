// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command tm runs the built-in Turing machines on input words.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
