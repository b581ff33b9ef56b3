package main

import (
	"os"

	"github.com/msto63/chbrowse/cmd/chbrowse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
