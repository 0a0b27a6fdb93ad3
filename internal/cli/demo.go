package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/conway/internal/harness"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Check the built-in demonstration identities",
		Long: `Check the built-in demo scenario: a preview of one half, the
products 1/2·1/2 and 1/2·1/4, 3+4 = 7 and ↑+↑ = {0|↑}.

Examples:
  conway demo
  conway demo --db ./conway.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := harness.DemoScenario()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load demo scenario", err)
			}
			return runChecks(cmd, opts, []*harness.Scenario{s})
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite database")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "use this run ID")

	return cmd
}
