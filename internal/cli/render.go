package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/conway/internal/game"
	"github.com/roach88/conway/internal/harness"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Depth int
}

// RenderResult is the JSON payload of render.
type RenderResult struct {
	Scenario  string   `json:"scenario"`
	Game      string   `json:"game"`
	Key       game.Key `json:"key"`
	Depth     int      `json:"depth"`
	Rendering string   `json:"rendering"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <scenario> <game>",
		Short: "Render a game defined in a scenario",
		Long: `Evaluate one game of a scenario file and print it in canonical form.

Depth 0 prints the display name, depth n opens n levels of braces,
and depth -1 expands the whole tree without names. Builtins (zero, star,
up) can be rendered from any scenario.

Examples:
  conway render dyadic.yaml quarter
  conway render dyadic.yaml quarter --depth -1`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&opts.Depth, "depth", 1, "render depth (-1 for unbounded)")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions, path, name string) error {
	if opts.Depth < game.Unbounded {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid depth %d: must be >= -1", opts.Depth))
	}

	s, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	g, err := harness.Eval(s, game.NewArena(), name)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("failed to evaluate %q", name), err)
	}

	result := RenderResult{
		Scenario:  s.Name,
		Game:      name,
		Key:       g.Key(),
		Depth:     opts.Depth,
		Rendering: g.Render(opts.Depth),
	}
	opts.logger().Debug("game rendered", "game", name, "key", g.Key().Short(), "depth", opts.Depth)

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), "ok", result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Rendering)
	return nil
}
