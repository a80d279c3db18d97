package main

import (
	"os"

	"github.com/taxpilot-dev/taxpilot/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
