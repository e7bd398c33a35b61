// Package main is the example program whose call graph cgraph2dot draws.
package main

import (
	"io"
	"os"

	"github.com/cgraph2dot/cgraph2dot/internal/cli/config"
	"github.com/cgraph2dot/cgraph2dot/internal/demo"
)

func main() {
	run(os.Stdout, os.Stderr)
}

// run executes the example program. A failed write to stdout is logged to
// stderr; the program still exits zero.
func run(stdout, stderr io.Writer) {
	if err := demo.Run(stdout, demo.DefaultInputs()); err != nil {
		config.NewLogger(false, stderr).Error("failed to write results", "error", err)
	}
}
