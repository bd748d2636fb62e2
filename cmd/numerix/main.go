package main

import (
	"os"

	"numerix/cmd/numerix/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
