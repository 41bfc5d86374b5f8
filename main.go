package main

import (
	"os"

	"github.com/simonbystrom/warroom/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
