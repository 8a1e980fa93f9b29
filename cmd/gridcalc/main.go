package main

import (
	"os"

	"github.com/hamzaelsherif03/Calculator/cmd/gridcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
