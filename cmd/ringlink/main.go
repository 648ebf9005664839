// Package main is the entry point for the ringlink CLI.
//
// Usage:
//
//	ringlink [flags] <command> [args]
//
// Commands:
//
//	run      - Cluster a scene file and write the merge record
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ringlink/cmd/ringlink/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
