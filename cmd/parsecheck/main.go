package main

import (
	"os"

	"github.com/TylerMullins037/Parser/cmd/parsecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
