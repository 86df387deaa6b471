package main

import (
	"os"

	"github.com/colaworks/colaplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
