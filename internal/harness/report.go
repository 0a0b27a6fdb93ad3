package harness

import (
	"fmt"
	"io"
	"strconv"
)

// FormatReport writes a human-readable summary of r, one line per check.
func FormatReport(w io.Writer, r *Result) error {
	if _, err := fmt.Fprintf(w, "scenario: %s\nrun: %s\n", r.Scenario, r.RunID); err != nil {
		return err
	}
	for i := range r.Checks {
		if _, err := fmt.Fprintln(w, checkLine(&r.Checks[i])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "passed %d, failed %d, known issues %d, resolved %d\n",
		r.Passed, r.Failed, r.KnownIssues, r.Resolved)
	return err
}

func checkLine(c *CheckResult) string {
	line := fmt.Sprintf("[%s] %s: ", c.Status, c.Name)
	switch {
	case c.Status == StatusError:
		return line + c.Detail
	case c.Kind == "render":
		line += fmt.Sprintf("render(%s, %d) = %s", c.LHS, c.Depth, strconv.Quote(c.Got))
		if c.Got != c.Want {
			line += fmt.Sprintf(", want %s", strconv.Quote(c.Want))
		}
	default:
		line += fmt.Sprintf("%s %s %s is %s", c.LHS, Symbol(c.Relation), c.RHS, c.Got)
		if c.Got != c.Want {
			line += fmt.Sprintf(", want %s", c.Want)
		}
	}
	if c.Status == StatusKnownIssue || c.Status == StatusResolved {
		line += fmt.Sprintf(" (known issue: %s)", c.Detail)
	}
	return line
}
