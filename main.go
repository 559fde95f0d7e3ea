// Package main provides the entry point for Continuum.
// Continuum is a source port of the 68000 arcade game, replaying the
// original's drawing and collision routines instruction by instruction.
//
// For the full CLI, use: go run ./cmd/continuum
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Continuum - gravity arcade game port")
	fmt.Println("")
	fmt.Println("Usage: continuum [options] <planet.json>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -frames    Number of frames to render")
	fmt.Println("  -config    Path to game configuration JSON file")
	fmt.Println("  -out       Directory for the rendered PGM frames")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/continuum' for the headless renderer,")
	fmt.Println("or 'go run ./cmd/gwview' for the windowed viewer.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/continuum' instead.")
	}
}
