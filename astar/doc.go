// Package astar provides an exact A* solver for N×N sliding-tile boards,
// with optional macro-move acceleration via the pattern package.
//
// Overview:
//
//   - A* expands boards in order of f = g + h: g counts moves taken, h is
//     the configured heuristic's estimate of moves remaining.
//   - With an admissible heuristic the first goal popped is a provably
//     shortest solution. Inadmissible heuristics (heuristic.Enhanced,
//     heuristic.WalkingDistance, heuristic.EmptyCellPath) are accepted
//     but forfeit that guarantee.
//   - Nodes live in a flat arena addressed by integer indices; parents are
//     indices too, so reconstruction is a cheap backward walk with no
//     pointer cycles.
//
// When to use:
//
//   - Boards up to 4×4 with admissible heuristics: exact optimal paths.
//   - Larger boards where memory allows, or wherever a second engine is
//     needed to cross-check idastar results.
//
// Key features:
//
//   - Functional options select heuristic, iteration ceiling, pattern
//     table and cancellation context without changing the API signature.
//   - WithPatterns folds multi-move motifs into single weighted edges;
//     speed changes, solution lengths do not.
//   - Cooperative cancellation: the context is polled every 1000 pops.
//   - Result carries expansion and timing counters for benchmarking.
//
// Performance and complexity:
//
//   - Time:  O(b^d) pops worst case (b ≤ 4 without patterns); the
//     heuristic's accuracy is what bounds the tree in practice.
//   - Space: O(nodes generated) for the arena plus two fingerprint maps.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        nil board passed to Solve.
//   - ErrExhausted:      open set drained; the board is unsolvable.
//   - ErrIterationLimit: ceiling tripped; inconclusive, NOT unsolvability.
//   - ErrCancelled:      the caller's context fired mid-search.
//   - ErrNilHeuristic:   (via panic) WithHeuristic(nil) at configuration.
//
// Thread safety:
//
//   - Solve shares no mutable state between calls; run as many concurrent
//     searches as memory allows, each on its own inputs.
//
// See also:
//
//   - idastar: same results in O(depth) memory, the cross-check engine.
//   - pattern: the macro-move tables behind WithPatterns.
package astar
