package main

import (
	"fmt"
	"os"

	"joint-engine/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(newViewCommand).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
