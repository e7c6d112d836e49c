//go:build !js

// Command reverbfx-dev is the developer companion for the ReverbFX page: a
// live-reloading server, a native tone check and a config dump.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
