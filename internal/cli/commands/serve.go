package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cgraph2dot/cgraph2dot/internal/cli/config"
	"github.com/cgraph2dot/cgraph2dot/internal/viewer"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <file.dot>",
		Short: "Serve a call graph with live reload",
		Long: `Serve the interactive call graph page over HTTP.

With --watch (the default) the DOT file is re-read whenever it changes and
open pages reload themselves. The graph is also available as /graph.json
and /graph.dot.`,
		Example: `  cgraph2dot serve callgraph.dot

  # Custom port, no file watching
  cgraph2dot serve callgraph.dot --port 9000 --watch=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args[0])
		},
	}

	cmd.Flags().Int("port", config.DefaultPort, "Port to serve on")
	cmd.Flags().Bool("watch", true, "Reload when the DOT file changes")

	return cmd
}

func runServe(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	srv, err := viewer.NewServer(viewer.Config{
		DotFile: path,
		Title:   cfg.Title,
		Port:    cfg.Serve.Port,
		Watch:   cfg.Serve.Watch,
		Logger:  cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx.Renderer.Printf("Serving %s at http://localhost:%d (Ctrl+C to stop)\n", path, cfg.Serve.Port)
	return srv.Serve(ctx)
}
