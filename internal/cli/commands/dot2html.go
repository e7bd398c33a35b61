package commands

import (
	"github.com/cgraph2dot/cgraph2dot/internal/viewer"
	"github.com/spf13/cobra"
)

// Dot2HTMLOptions holds options for the dot2html command.
type Dot2HTMLOptions struct {
	From string
}

// NewDot2HTMLCommand creates the dot2html command.
func NewDot2HTMLCommand() *cobra.Command {
	opts := &Dot2HTMLOptions{}

	cmd := &cobra.Command{
		Use:   "dot2html <input.dot> <output.html>",
		Short: "Convert a call graph to an interactive HTML page",
		Long: `Convert a DOT call graph into a self-contained HTML page.

The page lets you search functions, filter by group, collapse subtrees with
a double-click, toggle physics, and export a PNG.`,
		Example: `  cgraph2dot dot2html callgraph.dot callgraph.html

  # Only what main reaches, with a custom title
  cgraph2dot dot2html callgraph.dot main.html --from main --title "main()"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot2HTML(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Only include functions reachable from this one")

	return cmd
}

func runDot2HTML(cmd *cobra.Command, in, out string, opts *Dot2HTMLOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	r.Printf("Parsing %s...\n", in)
	g, err := loadGraph(in, opts.From, cmdCtx.Logger)
	if err != nil {
		return err
	}
	r.Printf("Found %d nodes and %d edges\n", g.DeclaredCount(), g.EdgeCount())

	r.Printf("Generating %s...\n", out)
	if err := viewer.RenderFile(g, out, viewer.Options{Title: cmdCtx.Cfg.Title}); err != nil {
		return err
	}
	r.Printf("Done! Open %s in a web browser.\n", out)
	return nil
}
