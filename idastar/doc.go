// Package idastar provides an exact iterative-deepening A* solver for
// N×N sliding-tile boards in O(depth) memory.
//
// Overview:
//
//   - Depth-first probes run under an f = g + h threshold; a pruned
//     branch reports the minimal exceeding f it saw, which becomes the
//     next round's threshold.
//   - No open set, no arena: memory is the recursion stack plus the
//     current path. This is the engine for boards where astar's node
//     storage would not fit.
//   - The successor that would undo the move just taken is skipped at
//     every step; undoing is legal but never on a shortest path.
//
// When to use:
//
//   - Deep searches under memory pressure.
//   - As the independent optimality cross-check for astar results.
//
// Key features:
//
//   - Functional options select heuristic, node budget and cancellation
//     context; cancellation is threaded through the recursion and polled
//     every 1000 visits.
//   - Result reports total node visits across all deepening rounds.
//
// Performance and complexity:
//
//   - Time:  shallow nodes are revisited once per deepening round; with a
//     strong heuristic the last round dominates and total work stays
//     close to plain A*'s.
//   - Space: O(solution depth).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:      nil board passed to Solve.
//   - ErrExhausted:    every branch pruned with nothing deeper; the board
//     is unsolvable.
//   - ErrNodeLimit:    budget tripped; inconclusive, NOT unsolvability.
//   - ErrCancelled:    the caller's context fired mid-search.
//   - ErrNilHeuristic: (via panic) WithHeuristic(nil) at configuration.
//
// Thread safety:
//
//   - Solve shares no mutable state between calls; concurrent searches on
//     separate inputs need no synchronization.
//
// See also:
//
//   - astar: the arena-backed engine with pattern acceleration.
package idastar
