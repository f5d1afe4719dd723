package main

import (
	"os"

	"github.com/anika/decodequest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
