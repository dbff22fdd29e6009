// Package main is the entry point for the proxima CLI.
//
// Usage:
//
//	proxima [flags] <command> [file]
//
// Commands:
//
//	budget    - connect the N closest pairs, print the top-K cluster size product
//	complete  - find the pair that joins everything, print x_a·x_b
//	mst       - print the spanning tree edge count and total squared weight
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/proxima/cmd/proxima/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
