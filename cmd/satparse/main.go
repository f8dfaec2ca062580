package main

import (
	"os"

	"github.com/nanolith/libsat-go/cmd/satparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
