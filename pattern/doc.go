// Package pattern recognizes recurring local move motifs around the empty
// cell and offers them to the search engines as single macro-move edges.
//
// Three matcher generations implement the same idea with different
// cost/coverage trade-offs:
//
//  1. Catalog: hand-coded sequences pinned to literal board coordinates.
//     Matching is one position comparison, but coverage is limited to the
//     anchored spots. Kept as the correctness baseline.
//  2. Pattern.MatchAt: each motif stored once as relative empty-cell
//     displacements and matched by trying all 8 board symmetries at
//     runtime. Full coverage, O(patterns × 8) per search node.
//  3. HashTable: the symmetry expansion is done once at build time and
//     indexed by an 8-bit occupancy mask of the empty cell's neighbors;
//     matching drops to a mask lookup plus revalidation of the few
//     candidates whose first-move precondition holds. This is the
//     variant the search engines use.
//
// A Match carries the resolved absolute move sequence and its cost, so
// a search can fold it in as one edge of weight Cost and still replay
// the individual moves during path reconstruction. Accepting a match
// never changes which solutions exist, only how fast they are found.
package pattern
