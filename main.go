package main

import (
	"os"

	"github.com/kavitha/econ101/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
