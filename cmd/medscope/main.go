// Package main implements the medscope CLI tool, a command line front
// end for the inspector engine: classify healthcare message text, parse
// it into a normalized form, and render bounded structure trees.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
