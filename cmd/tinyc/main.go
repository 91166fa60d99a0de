package main

import (
	"fmt"
	"os"

	"github.com/metaphox/tinyc/cmd/tinyc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tinyc: %v\n", err)
		os.Exit(1)
	}
}
