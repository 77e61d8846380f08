// Package main provides the convy CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/convy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
