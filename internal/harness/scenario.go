package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Scenario is a named set of game definitions and checks.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Games maps names to expressions. Checks and other definitions refer
	// to them by name.
	Games map[string]any `yaml:"games,omitempty"`

	// Checks run in order.
	Checks []Check `yaml:"checks"`
}

// Check is one relation or render check.
type Check struct {
	// Name identifies the check within its scenario.
	Name string `yaml:"name"`

	// LHS is the expression under test.
	LHS any `yaml:"lhs"`

	// Relation is one of leq, geq, eq, lt, gt. Empty means eq.
	Relation string `yaml:"relation,omitempty"`

	// RHS is compared against LHS by relation checks.
	RHS any `yaml:"rhs,omitempty"`

	// Expect is the expected outcome of the relation. Nil means true.
	Expect *bool `yaml:"expect,omitempty"`

	// Depth is the render depth for render checks. Nil means 1.
	Depth *int `yaml:"depth,omitempty"`

	// Rendering turns the check into a render check.
	Rendering *string `yaml:"rendering,omitempty"`

	// KnownIssue documents a check that is allowed to fail.
	KnownIssue string `yaml:"known_issue,omitempty"`
}

// IsRender reports whether c is a render check.
func (c *Check) IsRender() bool {
	return c.Rendering != nil
}

// Relations lists the supported relation names.
var Relations = []string{"leq", "geq", "eq", "lt", "gt"}

// Format selects the scenario file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cue") {
		return FormatCUE
	}
	return FormatYAML
}

//go:embed scenarios/demo.yaml
var demoYAML []byte

// DemoScenario returns the built-in demonstration scenario.
func DemoScenario() (*Scenario, error) {
	return ParseScenario(demoYAML, FormatYAML, "demo.yaml")
}

// LoadScenario reads and parses a scenario file. The format follows the
// file extension: .cue for CUE, anything else for YAML.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data, FormatForPath(path), filepath.Base(path))
}

// ParseScenario parses and validates scenario data. filename is used in
// CUE error positions only.
func ParseScenario(data []byte, format Format, filename string) (*Scenario, error) {
	if format == FormatCUE {
		exported, err := exportCUE(data, filename)
		if err != nil {
			return nil, err
		}
		data = exported
	}

	// Unknown fields are rejected to catch typos like "check:" vs "checks:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", format, err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// exportCUE evaluates a CUE document and exports it as JSON, which the
// YAML decoder reads as a subset of YAML.
func exportCUE(data []byte, filename string) ([]byte, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("CUE scenario is not concrete: %w", err)
	}
	out, err := v.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export CUE: %w", err)
	}
	return out, nil
}

// validateScenario checks required fields and check shapes.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("at least one check is required")
	}
	for name := range s.Games {
		if isBuiltin(name) {
			return fmt.Errorf("game %q shadows a builtin", name)
		}
	}

	seen := make(map[string]bool, len(s.Checks))
	for i := range s.Checks {
		c := &s.Checks[i]
		if c.Name == "" {
			return fmt.Errorf("checks[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("checks[%d]: duplicate check name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.LHS == nil {
			return fmt.Errorf("check %q: lhs is required", c.Name)
		}

		if c.IsRender() {
			if c.RHS != nil || c.Relation != "" || c.Expect != nil {
				return fmt.Errorf("check %q: render checks take no rhs, relation or expect", c.Name)
			}
			if c.Depth != nil && *c.Depth < -1 {
				return fmt.Errorf("check %q: depth must be >= -1", c.Name)
			}
			continue
		}

		if c.Depth != nil {
			return fmt.Errorf("check %q: depth is only valid with rendering", c.Name)
		}
		if c.RHS == nil {
			return fmt.Errorf("check %q: rhs is required", c.Name)
		}
		if c.Relation == "" {
			c.Relation = "eq"
		}
		if !isRelation(c.Relation) {
			return fmt.Errorf("check %q: invalid relation %q: must be one of %v", c.Name, c.Relation, Relations)
		}
	}

	return nil
}

func isRelation(r string) bool {
	for _, known := range Relations {
		if r == known {
			return true
		}
	}
	return false
}
