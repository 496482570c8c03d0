// Package main is the entry point for the lladdr packet socket address tool.
package main

import (
	"fmt"
	"os"

	"firestige.xyz/lladdr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
