// Package grid implements the N×N sliding-tile board at the bottom of the
// tilath dependency tree.
//
// A board maps each (row, col) cell to either a numbered tile or the single
// empty cell. Invariants, maintained by construction and by Apply being the
// only mutating primitive:
//
//   - exactly one empty cell;
//   - every tile's value is unique, tile count is N²−1;
//   - a tile's home position never changes, only its current cell does.
//
// Lifecycle:
//
//   - New(size) builds the solved board (sizes 3..15; ErrSizeTooSmall /
//     ErrSizeTooLarge otherwise);
//   - Apply / ApplyChain mutate it in place;
//   - Clone produces a fully independent copy for branch-local search state;
//   - Fingerprint yields a 64-bit dedup hash of the cell contents.
//
// Read operations (TileAt, Find, Tiles, IsSolved) never fail: out-of-range
// lookups simply report "no tile".
//
// Complexity: all operations are O(1) or O(N²); no allocation happens on
// the Apply path.
package grid
