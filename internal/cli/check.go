package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/conway/internal/harness"
	"github.com/roach88/conway/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Database string // record runs here when set
	RunID    string // fixed run ID, single scenario only

	// RunIDs overrides the run ID source (for testing).
	// If nil, defaults to harness.UUIDv7Generator.
	RunIDs harness.RunIDGenerator
}

// CheckResult is the JSON payload of check and demo.
type CheckResult struct {
	Runs   []*harness.Result `json:"runs"`
	Failed int               `json:"failed"` // runs with at least one failed check
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenario>...",
		Short: "Check identities from scenario files",
		Long: `Run every check of the given scenario files and print a report.

Arguments may be files or directories; a directory contributes its
.yaml, .yml and .cue files. With --db each run is recorded.

Exit codes:
  0 - All checks passed (known issues do not count)
  1 - One or more checks failed
  2 - Command error (unreadable scenario, database error, etc.)

Examples:
  conway check ./scenarios
  conway check dyadic.yaml --db ./conway.db
  conway check dyadic.cue --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := harness.LoadScenarios(args...)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load scenarios", err)
			}
			return runChecks(cmd, opts, scenarios)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record runs in this SQLite database")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "use this run ID (single scenario only)")

	return cmd
}

// runChecks runs scenarios in order, records them when a database is
// configured, and reports. The returned error carries the exit code.
func runChecks(cmd *cobra.Command, opts *CheckOptions, scenarios []*harness.Scenario) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.logger()

	ids := opts.RunIDs
	if opts.RunID != "" {
		if len(scenarios) != 1 {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("--run-id needs exactly one scenario, got %d", len(scenarios)))
		}
		ids = harness.NewFixedGenerator(opts.RunID)
	}
	if ids == nil {
		ids = harness.UUIDv7Generator{}
	}

	var st *store.Store
	if opts.Database != "" {
		var err error
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()
	}

	out := CheckResult{Runs: make([]*harness.Result, 0, len(scenarios))}
	for _, s := range scenarios {
		result, err := harness.Run(ctx, s, harness.WithLogger(logger), harness.WithRunIDs(ids))
		if err != nil {
			return WrapExitError(ExitCommandError, "check interrupted", err)
		}
		if st != nil {
			run, err := st.WriteRun(ctx, harness.Record(result))
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to record run", err)
			}
			logger.Info("run recorded", "run_id", run.ID, "seq", run.Seq, "db", opts.Database)
		}
		if !result.OK() {
			out.Failed++
		}
		out.Runs = append(out.Runs, result)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		status := "ok"
		if out.Failed > 0 {
			status = "error"
		}
		if err := writeJSON(w, status, out); err != nil {
			return err
		}
	} else {
		for i, r := range out.Runs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := harness.FormatReport(w, r); err != nil {
				return err
			}
		}
	}

	if out.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", out.Failed, len(out.Runs)))
	}
	return nil
}
