package main

import (
	"os"

	"github.com/netham45/fwbump/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
