package main

import (
	"os"

	"github.com/octopus-money/octopus/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
