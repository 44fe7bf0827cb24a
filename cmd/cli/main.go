// Package main is the entry point for the kscalc CLI.
package main

import (
	"os"

	"kingshot-calc/cmd/cli/cmd"
	"kingshot-calc/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
