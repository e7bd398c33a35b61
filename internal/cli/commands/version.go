package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display cgraph2dot version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cgraph2dot v%s (commit %s, built %s)\n", version, commit, buildDate)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Call graph tooling for the calc example program")
		},
	}
}
