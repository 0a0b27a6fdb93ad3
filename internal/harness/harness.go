package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/conway/internal/game"
)

// Status is the outcome of one check.
type Status string

const (
	StatusPass       Status = "pass"
	StatusFail       Status = "fail"
	StatusError      Status = "error"
	StatusKnownIssue Status = "known-issue" // failed, but documented as known
	StatusResolved   Status = "resolved"    // documented as known, but passed
)

// CheckResult records what a check saw.
type CheckResult struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // "relation" or "render"
	Relation string `json:"relation,omitempty"`
	Depth    int    `json:"depth,omitempty"`

	// LHS and RHS are the String forms of the evaluated expressions.
	LHS    string   `json:"lhs,omitempty"`
	RHS    string   `json:"rhs,omitempty"`
	LHSKey game.Key `json:"lhs_key,omitempty"`
	RHSKey game.Key `json:"rhs_key,omitempty"`

	Want   string `json:"want"`
	Got    string `json:"got,omitempty"`
	Status Status `json:"status"`

	// Detail holds the error message or the known-issue note.
	Detail string `json:"detail,omitempty"`

	lhs, rhs *game.Game
}

// Failed reports whether the check counts against the run.
func (c *CheckResult) Failed() bool {
	return c.Status == StatusFail || c.Status == StatusError
}

// Result is the outcome of running one scenario.
type Result struct {
	RunID       string        `json:"run_id"`
	Scenario    string        `json:"scenario"`
	Checks      []CheckResult `json:"checks"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	KnownIssues int           `json:"known_issues"`
	Resolved    int           `json:"resolved"`
}

// OK reports whether no check failed.
func (r *Result) OK() bool {
	return r.Failed == 0
}

func (r *Result) add(c CheckResult) {
	switch c.Status {
	case StatusPass:
		r.Passed++
	case StatusFail, StatusError:
		r.Failed++
	case StatusKnownIssue:
		r.KnownIssues++
	case StatusResolved:
		r.Resolved++
	}
	r.Checks = append(r.Checks, c)
}

// Option configures Run.
type Option func(*runner)

// WithArena evaluates on the given arena instead of a fresh one.
func WithArena(a *game.Arena) Option {
	return func(r *runner) { r.arena = a }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithRunIDs sets the run ID source. The default is UUIDv7Generator.
func WithRunIDs(g RunIDGenerator) Option {
	return func(r *runner) { r.ids = g }
}

type runner struct {
	arena  *game.Arena
	logger *slog.Logger
	ids    RunIDGenerator
}

// Run executes every check of the scenario in order.
//
// A check whose expressions fail to evaluate is recorded with StatusError
// and the run continues. Run itself only fails when ctx is done.
func Run(ctx context.Context, s *Scenario, opts ...Option) (*Result, error) {
	r := &runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ids:    UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.arena == nil {
		r.arena = game.NewArena()
	}

	result := &Result{
		RunID:    r.ids.Generate(),
		Scenario: s.Name,
	}
	ev := newEvaluator(r.arena, s.Games)

	r.logger.Info("scenario starting", "scenario", s.Name, "run_id", result.RunID, "checks", len(s.Checks))

	for i := range s.Checks {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}

		c := r.runCheck(ev, &s.Checks[i])
		r.logger.Debug("check evaluated",
			"scenario", s.Name,
			"check", c.Name,
			"status", c.Status,
			"want", c.Want,
			"got", c.Got)
		if c.Failed() {
			r.logger.Warn("check failed", "scenario", s.Name, "check", c.Name, "detail", c.Detail)
		}
		result.add(c)
	}

	stats := r.arena.Stats()
	r.logger.Info("scenario finished",
		"scenario", s.Name,
		"passed", result.Passed,
		"failed", result.Failed,
		"known_issues", result.KnownIssues,
		"resolved", result.Resolved,
		"memo_comparisons", stats.Comparisons,
		"memo_sums", stats.Sums,
		"memo_products", stats.Products)

	return result, nil
}

func (r *runner) runCheck(ev *evaluator, c *Check) CheckResult {
	res := CheckResult{Name: c.Name, Kind: "relation", Relation: c.Relation}
	if c.IsRender() {
		res.Kind = "render"
		res.Relation = ""
	}

	lhs, err := ev.evalExpr(c.LHS)
	if err != nil {
		return errored(res, "lhs", err)
	}
	res.lhs, res.LHS, res.LHSKey = lhs, lhs.String(), lhs.Key()

	var ok bool
	if c.IsRender() {
		res.Depth = 1
		if c.Depth != nil {
			res.Depth = *c.Depth
		}
		res.Want = *c.Rendering
		res.Got = lhs.Render(res.Depth)
		ok = res.Got == res.Want
	} else {
		rhs, err := ev.evalExpr(c.RHS)
		if err != nil {
			return errored(res, "rhs", err)
		}
		res.rhs, res.RHS, res.RHSKey = rhs, rhs.String(), rhs.Key()

		want := true
		if c.Expect != nil {
			want = *c.Expect
		}
		got := relate(r.arena, c.Relation, lhs, rhs)
		res.Want, res.Got = fmt.Sprint(want), fmt.Sprint(got)
		ok = got == want
	}

	switch {
	case c.KnownIssue != "" && ok:
		res.Status, res.Detail = StatusResolved, c.KnownIssue
	case c.KnownIssue != "":
		res.Status, res.Detail = StatusKnownIssue, c.KnownIssue
	case ok:
		res.Status = StatusPass
	default:
		res.Status = StatusFail
	}
	return res
}

func errored(res CheckResult, side string, err error) CheckResult {
	res.Status = StatusError
	res.Detail = fmt.Sprintf("%s: %v", side, err)
	return res
}

func relate(a *game.Arena, relation string, x, y *game.Game) bool {
	switch relation {
	case "leq":
		return a.Leq(x, y)
	case "geq":
		return a.Geq(x, y)
	case "lt":
		return a.Lt(x, y)
	case "gt":
		return a.Gt(x, y)
	default:
		return a.Eq(x, y)
	}
}

// Symbol returns the operator spelling of a relation name.
func Symbol(relation string) string {
	switch relation {
	case "leq":
		return "<="
	case "geq":
		return ">="
	case "lt":
		return "<"
	case "gt":
		return ">"
	default:
		return "=="
	}
}
