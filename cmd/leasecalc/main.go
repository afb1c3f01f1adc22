// Package main is the entry point for the leasecalc CLI.
package main

import (
	"os"

	"lease-amortizer/cmd/leasecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
