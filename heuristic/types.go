// Package heuristic defines the estimator capability shared by all tilath
// distance heuristics, plus the closed set of five implementations.
package heuristic

import "github.com/katalvlaran/tilath/grid"

// Heuristic estimates the number of moves separating a board from the
// solved arrangement. Implementations differ in accuracy versus cost, and
// – critically – in admissibility: only admissible estimators never
// overestimate, which is what lets A* guarantee optimal paths.
//
// The implementor set is closed by design (the search engines dispatch on
// a small, performance-sensitive family, not an open plugin surface):
//
//   - Manhattan       – admissible, consistent; the O(N²) baseline.
//   - LinearConflict  – admissible; Manhattan + 2 per in-line conflict.
//   - Enhanced        – NOT admissible; adds corner/edge penalties for speed.
//   - WalkingDistance – NOT admissible; seeded table values can overshoot.
//   - EmptyCellPath   – NOT admissible; secondary empty-cell positioning signal.
type Heuristic interface {
	// Estimate returns a non-negative estimate of moves-to-solve.
	// Estimate of a solved board is always 0.
	Estimate(g *grid.Grid) int

	// Admissible reports whether Estimate is guaranteed to never exceed
	// the true optimal move count. Searches driven by a non-admissible
	// estimator may return valid but non-optimal paths.
	Admissible() bool

	// Name returns a short stable identifier for diagnostics.
	Name() string
}
