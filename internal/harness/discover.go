package harness

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScenarioError wraps a failure to find or load one scenario file.
type ScenarioError struct {
	Path string
	Err  error
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("scenario %s: %v", e.Path, e.Err)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// IsScenarioError reports whether err wraps a *ScenarioError.
func IsScenarioError(err error) bool {
	var se *ScenarioError
	return errors.As(err, &se)
}

var scenarioExts = map[string]bool{".yaml": true, ".yml": true, ".cue": true}

// DiscoverScenarios expands the given paths into scenario files. Files are
// taken as-is; directories contribute their *.yaml, *.yml and *.cue
// entries (not recursively) in lexical order.
func DiscoverScenarios(paths ...string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &ScenarioError{Path: p, Err: err}
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		var found []string
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, &ScenarioError{Path: p, Err: err}
		}
		for _, entry := range entries {
			if entry.Type()&fs.ModeType != 0 {
				continue
			}
			if scenarioExts[strings.ToLower(filepath.Ext(entry.Name()))] {
				found = append(found, filepath.Join(p, entry.Name()))
			}
		}
		if len(found) == 0 {
			return nil, &ScenarioError{Path: p, Err: errors.New("directory holds no scenario files")}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// LoadScenarios discovers and loads every scenario under paths. The first
// failure stops loading.
func LoadScenarios(paths ...string) ([]*Scenario, error) {
	files, err := DiscoverScenarios(paths...)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*Scenario, 0, len(files))
	for _, f := range files {
		s, err := LoadScenario(f)
		if err != nil {
			return nil, &ScenarioError{Path: f, Err: err}
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
