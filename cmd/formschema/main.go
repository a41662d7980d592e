// Package main is the entry point for the formschema CLI.
package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-formschema/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
