package main

import (
	"os"

	"stakeplug/cmd/stakeplug/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
