package main

import (
	"os"

	"github.com/vsinha/bundletrack/pkg/interfaces/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
