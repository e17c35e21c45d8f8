// Package heuristic provides the distance estimators driving tilath's
// search engines: lower-bound (and deliberately not-lower-bound) guesses
// of how many moves separate a board from the solved arrangement.
//
// Five estimators implement the Heuristic interface, ordered by accuracy
// and cost:
//
//	estimator        admissible   cost/call    notes
//	Manhattan        yes          O(N²)        consistent baseline
//	LinearConflict   yes          O(N³)        +2 per in-line inversion
//	Enhanced         NO           O(N³)        corner/edge penalties
//	WalkingDistance  NO           O(N) lookups seeded tables may overshoot
//	EmptyCellPath    NO           O(N² log N)  hole-positioning signal
//
// Admissibility matters: A* returns provably shortest paths only when its
// estimator never overestimates. Enhanced, WalkingDistance and
// EmptyCellPath knowingly give that guarantee up for speed – choosing
// them is a documented, opt-in trade-off, surfaced through
// Heuristic.Admissible and never hidden behind a default.
//
// Heuristic quality drives search tree size directly: on hard 4×4 boards
// the difference between Manhattan and Enhanced is routinely an order of
// magnitude in expanded nodes.
//
// WalkingDistance keeps one signature table per grid size, built lazily on
// first use and shared read-only process-wide afterwards.
//
// Every estimator returns 0 for a solved board.
package heuristic
