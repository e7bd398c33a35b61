// Package commands implements the cgraph2dot subcommands.
package commands

import (
	"log/slog"

	"github.com/cgraph2dot/cgraph2dot/internal/callgraph"
	"github.com/cgraph2dot/cgraph2dot/internal/cli/config"
	"github.com/cgraph2dot/cgraph2dot/internal/cli/output"
	"github.com/cgraph2dot/cgraph2dot/internal/dot"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger, and renderer set up by the
// root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// loadGraph parses a DOT file, optionally narrowed to what is reachable
// from the given function.
func loadGraph(path, from string, logger *slog.Logger) (*callgraph.Graph, error) {
	g, err := dot.ParseFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed call graph", "file", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	if from == "" {
		return g, nil
	}

	reach, err := g.Reachable(from)
	if err != nil {
		return nil, err
	}
	sub := g.Subgraph(append([]string{from}, reach...))
	logger.Debug("narrowed call graph", "from", from, "nodes", sub.NodeCount())
	return sub, nil
}
