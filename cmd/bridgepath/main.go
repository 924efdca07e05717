// Package main provides the bridgepath command line client. It runs the
// gateway operations directly against the configured model, without the
// HTTP server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
