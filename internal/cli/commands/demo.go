package commands

import (
	"github.com/cgraph2dot/cgraph2dot/internal/cli/config"
	"github.com/cgraph2dot/cgraph2dot/internal/demo"
	"github.com/spf13/cobra"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	defaults := demo.DefaultInputs()

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the example calculations",
		Long: `Run the example program whose call graph the other commands inspect.

The operands default to a=10, b=5 and 5! and can be changed with flags,
CGRAPH2DOT_DEMO__* environment variables, or the demo section of
cgraph2dot.yaml.`,
		Example: `  # Print the standard results
  cgraph2dot demo

  # Exercise the division-by-zero path
  cgraph2dot demo --b 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd)
		},
	}

	cmd.Flags().Int("a", defaults.A, "First operand")
	cmd.Flags().Int("b", defaults.B, "Second operand")
	cmd.Flags().Int("factorial-n", defaults.FactorialN, "Factorial input")

	return cmd
}

func runDemo(cmd *cobra.Command) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	return demo.NewRunner(cmd.OutOrStdout(), logger).Run(cfg.Demo)
}
