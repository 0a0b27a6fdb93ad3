package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/conway/internal/harness"
	"github.com/roach88/conway/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Scenario string
	Limit    int
}

// RunDetail is the JSON payload of history for a single run.
type RunDetail struct {
	Run    store.Run     `json:"run"`
	Checks []store.Check `json:"checks"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded check runs",
		Long: `List runs recorded by "conway check --db", oldest first, or show
the checks of one run.

Examples:
  conway history --db ./conway.db
  conway history --db ./conway.db --scenario demo --limit 5
  conway history --db ./conway.db 0190c1c2-...`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "only list runs of this scenario")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "only list the newest n runs (0 for all)")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if len(args) == 1 {
		return showRun(ctx, cmd, opts, st, args[0])
	}

	runs, err := st.ListRuns(ctx, opts.Scenario, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(w, "ok", runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%4d  %s  %-20s passed %d, failed %d, known issues %d, resolved %d\n",
			r.Seq, r.ID, r.Scenario, r.Passed, r.Failed, r.KnownIssues, r.Resolved)
	}
	return nil
}

func showRun(ctx context.Context, cmd *cobra.Command, opts *HistoryOptions, st *store.Store, id string) error {
	run, err := st.ReadRun(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return WrapExitError(ExitCommandError, "no such run", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}
	checks, err := st.ReadChecks(ctx, id)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read checks", err)
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(w, "ok", RunDetail{Run: run, Checks: checks})
	}

	fmt.Fprintf(w, "scenario: %s\nrun: %s (seq %d)\n", run.Scenario, run.ID, run.Seq)
	for _, c := range checks {
		fmt.Fprintf(w, "[%s] %s: %s\n", c.Status, c.Name, describeCheck(c))
	}
	fmt.Fprintf(w, "passed %d, failed %d, known issues %d, resolved %d\n",
		run.Passed, run.Failed, run.KnownIssues, run.Resolved)
	return nil
}

func describeCheck(c store.Check) string {
	var b strings.Builder
	switch {
	case c.Status == string(harness.StatusError):
		return c.Detail
	case c.Kind == "render":
		fmt.Fprintf(&b, "render(%s) = %q", c.LHS, c.Got)
	default:
		fmt.Fprintf(&b, "%s %s %s is %s", c.LHS, harness.Symbol(c.Relation), c.RHS, c.Got)
	}
	if c.Got != c.Want {
		fmt.Fprintf(&b, ", want %s", c.Want)
	}
	if c.LHSKey != "" {
		fmt.Fprintf(&b, " [%.12s]", c.LHSKey)
	}
	return b.String()
}
