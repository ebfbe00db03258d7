package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/tdh-archive/mflux/internal/cli"
	"github.com/tdh-archive/mflux/pkg/mflux"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mflux.ExitFailure)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(mflux.ExitCodeForError(err))
	}
}
