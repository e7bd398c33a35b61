// Package main provides the cgraph2dot command-line tool.
package main

import (
	"os"

	"github.com/cgraph2dot/cgraph2dot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
