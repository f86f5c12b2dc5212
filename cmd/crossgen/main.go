package main

import (
	"os"

	"github.com/crossplay/crossgen/cmd/crossgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
