package main

import (
	"errors"
	"os"

	"github.com/thesavant42/pokedex-ng/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			ui.PrintError(err.Error())
		}
		os.Exit(1)
	}
}
