package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/cdclsolver/cdcl/sat"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps the fatal error taxonomy to process exit codes. SAT and
// UNSAT are results, not errors, and never reach here.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, sat.ErrBadInput):
		return 2
	case errors.Is(err, sat.ErrOverflow):
		return 3
	case errors.Is(err, sat.ErrOutOfMemory):
		return 4
	case errors.Is(err, sat.ErrIO):
		return 5
	default:
		return 1
	}
}
