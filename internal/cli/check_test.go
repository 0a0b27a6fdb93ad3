package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: halves
games:
  half: {game: {left: [{int: 0}], right: [{int: 1}]}}
checks:
  - name: two halves
    lhs: {add: [half, half]}
    rhs: {int: 1}
`

const failingScenario = `
name: wrong
checks:
  - name: star is zero
    lhs: star
    rhs: zero
`

func TestDemoCommand_Text(t *testing.T) {
	stdout, _, err := execute(t, "demo", "--run-id", "demo-1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "scenario: demo\nrun: demo-1\n")
	assert.Contains(t, stdout, "[pass] quarter: {0|1}·{0|1} == {0|{0|1}} is true\n")
	assert.Contains(t, stdout, "[resolved] eighth:")
	assert.Contains(t, stdout, "[known-issue] double up: (↑+↑) == {0|↑} is false, want true (known issue:")
	assert.Contains(t, stdout, "passed 4, failed 0, known issues 1, resolved 1\n")
}

func TestDemoCommand_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "demo", "extra")
	require.Error(t, err)
}

func TestCheckCommand_Pass(t *testing.T) {
	path := writeFile(t, t.TempDir(), "halves.yaml", passingScenario)

	stdout, _, err := execute(t, "check", path, "--run-id", "r1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[pass] two halves: ({0|1}+{0|1}) == 1 is true")
}

func TestCheckCommand_Failure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wrong.yaml", failingScenario)

	stdout, _, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 of 1 scenario(s) failed")
	assert.Contains(t, stdout, "[fail] star is zero: * == 0 is false, want true")
}

func TestCheckCommand_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", passingScenario)
	writeFile(t, dir, "b.yaml", failingScenario)

	stdout, _, err := execute(t, "check", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Runs, 2)
	assert.Equal(t, "halves", resp.Data.Runs[0].Scenario)
	assert.Equal(t, "wrong", resp.Data.Runs[1].Scenario)
	assert.NotEmpty(t, resp.Data.Runs[0].RunID)
	assert.NotEqual(t, resp.Data.Runs[0].RunID, resp.Data.Runs[1].RunID)
}

func TestCheckCommand_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := writeFile(t, dir, "invalid.yaml", "name: empty\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", []string{"check"}, "requires at least 1 arg"},
		{"missing file", []string{"check", filepath.Join(dir, "nope.yaml")}, "failed to load scenarios"},
		{"invalid scenario", []string{"check", invalid}, "at least one check is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, _, err := execute(t, "check", invalid)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommand_RunIDNeedsOneScenario(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", passingScenario)
	b := writeFile(t, dir, "b.yaml", passingScenario)

	_, _, err := execute(t, "check", a, b, "--run-id", "r1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--run-id needs exactly one scenario")
}

func TestCheckCommand_CUE(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ups.cue", `
name: "ups"
checks: [{
	name: "up is positive"
	lhs: "up"
	relation: "gt"
	rhs: "zero"
}]
`)

	stdout, _, err := execute(t, "check", path, "--run-id", "r1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[pass] up is positive: ↑ > 0 is true")
}
