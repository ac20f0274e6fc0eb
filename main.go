package main

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/hexcard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize.RedString("Error: %v", err))
		os.Exit(1)
	}
}
