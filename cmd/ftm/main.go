// Package main is the entry point for the ftm CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/funtime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
