package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrDuplicateRun is returned by WriteRun when the run ID is already stored.
var ErrDuplicateRun = errors.New("run already recorded")

// WriteRun records a run, its positions and its checks in one transaction,
// and returns the stored run with its sequence number assigned.
//
// Positions are content-addressed: a key that is already stored is left
// untouched (ON CONFLICT DO NOTHING), so the first name seen for a
// position is the one kept. Every key referenced by a check must be among
// rec.Games or already stored.
func (s *Store) WriteRun(ctx context.Context, rec RunRecord) (Run, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, rec.Run.ID).Scan(&exists)
	switch {
	case err == nil:
		return Run{}, fmt.Errorf("write run %s: %w", rec.Run.ID, ErrDuplicateRun)
	case !errors.Is(err, sql.ErrNoRows):
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	run := rec.Run
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("write run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, scenario, passed, failed, known_issues, resolved)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Seq, run.Scenario, run.Passed, run.Failed, run.KnownIssues, run.Resolved)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	for _, g := range rec.Games {
		if err := writeGame(ctx, tx, g); err != nil {
			return Run{}, err
		}
	}

	for i, c := range rec.Checks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO checks
			(run_id, idx, name, kind, relation, lhs, rhs, lhs_key, rhs_key, want, got, status, detail)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			i,
			c.Name,
			c.Kind,
			c.Relation,
			c.LHS,
			c.RHS,
			nullable(c.LHSKey),
			nullable(c.RHSKey),
			c.Want,
			c.Got,
			c.Status,
			c.Detail,
		)
		if err != nil {
			return Run{}, fmt.Errorf("write check %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("write run: commit: %w", err)
	}
	return run, nil
}

func writeGame(ctx context.Context, tx *sql.Tx, g Game) error {
	left, err := marshalKeys(g.Left)
	if err != nil {
		return fmt.Errorf("write game %s: %w", g.Key, err)
	}
	right, err := marshalKeys(g.Right)
	if err != nil {
		return fmt.Errorf("write game %s: %w", g.Key, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (key, name, rendering, left_keys, right_keys)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO NOTHING
	`, g.Key, g.Name, g.Rendering, left, right)
	if err != nil {
		return fmt.Errorf("write game %s: %w", g.Key, err)
	}
	return nil
}
