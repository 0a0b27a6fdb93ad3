package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested run or game does not exist.
var ErrNotFound = errors.New("not found")

// ReadRun returns the run with the given ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, scenario, passed, failed, known_issues, resolved
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns recorded runs in recording order, newest last. An empty
// scenario lists every run; limit <= 0 means no limit, otherwise only the
// newest limit runs are returned.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListRuns(ctx context.Context, scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, scenario, passed, failed, known_issues, resolved
		FROM (
			SELECT * FROM runs
			WHERE ? = '' OR scenario = ?
			ORDER BY seq DESC
			LIMIT ?
		)
		ORDER BY seq ASC
	`, scenario, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadChecks returns the checks of a run in scenario order.
//
// Returns an empty slice (not nil) if the run has no checks.
func (s *Store) ReadChecks(ctx context.Context, runID string) ([]Check, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, idx, name, kind, relation, lhs, rhs,
		       COALESCE(lhs_key, ''), COALESCE(rhs_key, ''),
		       want, got, status, detail
		FROM checks
		WHERE run_id = ?
		ORDER BY idx ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	checks := []Check{}
	for rows.Next() {
		var c Check
		err := rows.Scan(
			&c.RunID,
			&c.Index,
			&c.Name,
			&c.Kind,
			&c.Relation,
			&c.LHS,
			&c.RHS,
			&c.LHSKey,
			&c.RHSKey,
			&c.Want,
			&c.Got,
			&c.Status,
			&c.Detail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}

// ReadGame returns the stored position with the given key.
func (s *Store) ReadGame(ctx context.Context, key string) (Game, error) {
	var g Game
	var left, right string
	err := s.db.QueryRowContext(ctx, `
		SELECT key, name, rendering, left_keys, right_keys
		FROM games
		WHERE key = ?
	`, key).Scan(&g.Key, &g.Name, &g.Rendering, &left, &right)
	if errors.Is(err, sql.ErrNoRows) {
		return Game{}, fmt.Errorf("game %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Game{}, fmt.Errorf("read game %s: %w", key, err)
	}

	if g.Left, err = unmarshalKeys(left); err != nil {
		return Game{}, fmt.Errorf("read game %s: %w", key, err)
	}
	if g.Right, err = unmarshalKeys(right); err != nil {
		return Game{}, fmt.Errorf("read game %s: %w", key, err)
	}
	return g, nil
}

// RunsTouching returns the IDs of runs whose checks compared the position
// with the given key, in recording order.
func (s *Store) RunsTouching(ctx context.Context, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT r.id, r.seq
		FROM runs r
		JOIN checks c ON c.run_id = r.id
		WHERE c.lhs_key = ? OR c.rhs_key = ?
		ORDER BY r.seq ASC
	`, key, key)
	if err != nil {
		return nil, fmt.Errorf("query runs touching %s: %w", key, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		var seq int64
		if err := rows.Scan(&id, &seq); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs touching %s: %w", key, err)
	}
	return ids, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	err := row.Scan(&r.ID, &r.Seq, &r.Scenario, &r.Passed, &r.Failed, &r.KnownIssues, &r.Resolved)
	return r, err
}
