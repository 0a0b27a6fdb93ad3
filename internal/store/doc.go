// Package store is the SQLite log of check runs.
//
// Three tables:
//   - runs: one row per scenario execution, ordered by seq
//   - games: canonical positions addressed by their content key
//   - checks: per-check outcomes, referencing the positions they compared
//
// # Ordering
//
// Runs are ordered by seq, a counter assigned inside the writing
// transaction. Wall-clock time is never stored. Checks are ordered by
// their index within the scenario.
//
// # Content addressing
//
// A position's key is derived from its canonical form alone, so the same
// value reached by different runs or different expressions shares one
// games row. Inserts use ON CONFLICT DO NOTHING.
//
// # Migrations
//
// The schema lives in migrations/NNNN_name.sql, embedded in the binary.
// PRAGMA user_version records the last migration applied; Open applies the
// rest in order and refuses databases from a newer version.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
