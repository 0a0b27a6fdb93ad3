// Package harness checks identities between game values described in
// scenario files.
//
// # Scenario Format
//
// Scenarios are YAML files (or CUE files with the same shape):
//
//	name: dyadic
//	description: "Products of dyadic fractions"
//	games:
//	  half: {game: {left: [{int: 0}], right: [{int: 1}]}}
//	checks:
//	  - name: quarter
//	    lhs: {mul: [half, half]}
//	    relation: eq
//	    rhs: {game: {left: [zero], right: [half]}}
//	  - name: preview
//	    lhs: half
//	    depth: 1
//	    rendering: "{0|1}"
//
// # Expressions
//
// Expressions are YAML nodes, not a textual notation:
//
//   - a string names a game from the games section or a builtin: zero,
//     star, up
//   - int: n is the integer n
//   - nim: n is the nimber *n (n >= 0)
//   - neg: e is -e
//   - add: [e1, e2, ...] and mul: [e1, e2, ...] fold left
//   - sub: [e1, e2] is e1 - e2
//   - game: {left: [...], right: [...], name: s} builds {left|right}
//
// int is limited to |n| <= MaxInteger and nim to n <= MaxNimber; larger
// arguments are evaluation errors.
//
// Definitions may refer to each other in any order. Unknown names, cyclic
// definitions and invalid arguments are reported as errors on the check
// that needed them.
//
// # Checks
//
// A relation check compares lhs and rhs with leq, geq, eq (default), lt or
// gt and expects true unless expect: false is given. A render check
// compares lhs rendered at depth with rendering. A check with known_issue
// set never fails the run: a failure is reported as known-issue, a pass as
// resolved.
//
// # Deterministic Output
//
// Each scenario runs on a fresh game.Arena, so names that appear in
// rendered results do not depend on what ran before. Run IDs come from a
// RunIDGenerator; tests use FixedGenerator for golden snapshots.
package harness
