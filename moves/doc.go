// Package moves enumerates the legal move topology of the sliding puzzle:
// which cells may slide into the empty cell, and how a long-distance
// "slide the whole line" gesture decomposes into single-step swaps.
//
// The Validator is pure and stateless apart from the board dimension – it
// never inspects tile content. All results are clipped to the board, so no
// out-of-range position ever escapes this package.
//
// Truth table for ImmediateMoves:
//
//   - corner empty cell → 2 candidates
//   - edge empty cell   → 3 candidates
//   - interior empty    → 4 candidates
//
// ResolveChain turns a same-row/same-column target into the ordered list of
// adjacent swaps that realizes the slide (tiles nearest the hole move
// first); diagonal targets resolve to nothing.
package moves
