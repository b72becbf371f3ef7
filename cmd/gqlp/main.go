package main

import (
	"os"

	"github.com/Protocol-Lattice/gqlp/cmd/gqlp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
