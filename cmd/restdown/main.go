package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS quietly; runtime defaults apply on failure.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := run(os.Args); err != nil {
		// A downstream reader closing its end of the pipe is benign.
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "restdown: %v\n", err)
		os.Exit(1)
	}
}
