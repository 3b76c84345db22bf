// Package main is the entry point for orderbase.
package main

import (
	"fmt"
	"os"

	"github.com/blaze-oss/orderbase/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
