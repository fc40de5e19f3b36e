// Package main is the entrypoint of fetcharr.
package main

import (
	"fmt"
	"os"

	"fetcharr/internal/cfg"
)

func main() {
	if err := cfg.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
