package main

import (
	"os"

	"zonecast/cmd/zonecast/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
