package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
	"github.com/cgraph2dot/cgraph2dot/internal/dot"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrGraphsDiffer is returned by dotdiff when the graphs are not identical.
	ErrGraphsDiffer = errors.New("graphs differ")
	// ErrFileNotFound is returned by dotdiff when an input file is missing.
	ErrFileNotFound = errors.New("file not found")
)

// Reported reports whether err was already explained on stdout by the
// command that returned it.
func Reported(err error) bool {
	return errors.Is(err, ErrGraphsDiffer) || errors.Is(err, ErrFileNotFound)
}

// NewDotDiffCommand creates the dotdiff command.
func NewDotDiffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dotdiff <reference.dot> <generated.dot>",
		Short: "Compare two call graphs structurally",
		Long: `Compare two DOT call graphs, ignoring declaration order.

Nodes are compared by id and label, edges by caller and callee. The command
exits non-zero when the graphs differ or an input file is missing. A file
without node declarations is an empty graph.`,
		Example: `  cgraph2dot dotdiff expected/c_example.dot build/c_example.dot`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDotDiff(cmd, args[0], args[1])
		},
	}
}

func runDotDiff(cmd *cobra.Command, refPath, genPath string) error {
	cmdCtx := NewCommandContext(cmd)

	for _, input := range []struct{ kind, path string }{
		{"Reference", refPath},
		{"Generated", genPath},
	} {
		if _, err := os.Stat(input.path); err != nil {
			cmdCtx.Renderer.Printf("Error: %s file not found: %s\n", input.kind, input.path)
			return fmt.Errorf("%w: %s", ErrFileNotFound, input.path)
		}
	}

	var ref, gen *callgraph.Graph
	eg := new(errgroup.Group)
	eg.Go(func() error {
		var err error
		ref, err = parseComparable(refPath)
		return err
	})
	eg.Go(func() error {
		var err error
		gen, err = parseComparable(genPath)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	diff := callgraph.Compare(ref, gen)
	cmdCtx.Logger.Debug("compared call graphs",
		"reference", refPath, "generated", genPath, "identical", diff.Equal())

	cmdCtx.Renderer.Println(diff.Summary(ref, gen))
	if !diff.Equal() {
		return ErrGraphsDiffer
	}
	return nil
}

// parseComparable parses path, treating a file without declarations as an
// empty graph.
func parseComparable(path string) (*callgraph.Graph, error) {
	g, err := dot.ParseFile(path)
	if errors.Is(err, dot.ErrNoGraph) {
		return callgraph.New(), nil
	}
	return g, err
}
