package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord builds a run with one position and one check on it.
func createTestRecord(id, scenario string) RunRecord {
	return RunRecord{
		Run: Run{ID: id, Scenario: scenario, Passed: 1},
		Games: []Game{
			{Key: "k-zero", Name: "0", Rendering: "{|}"},
		},
		Checks: []Check{
			{
				Name:     "zero is zero",
				Kind:     "relation",
				Relation: "eq",
				LHS:      "0",
				RHS:      "0",
				LHSKey:   "k-zero",
				RHSKey:   "k-zero",
				Want:     "true",
				Got:      "true",
				Status:   "pass",
			},
		},
	}
}
