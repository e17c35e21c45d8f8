// Package grid defines the board model shared by every tilath package:
// positions, tiles, size limits, and the sentinel errors raised during
// construction.
package grid

import "errors"

// Size limits for a puzzle board. A 3×3 board is the smallest puzzle with
// non-trivial search behavior; 15 keeps signatures packable into 4 bits per
// cell (used by the walking-distance tables).
const (
	// MinSize is the smallest supported board dimension.
	MinSize = 3
	// MaxSize is the largest supported board dimension.
	MaxSize = 15
)

// Sentinel errors for grid construction.
var (
	// ErrSizeTooSmall is returned when the requested size is below MinSize.
	ErrSizeTooSmall = errors.New("grid: size below minimum")
	// ErrSizeTooLarge is returned when the requested size is above MaxSize.
	ErrSizeTooLarge = errors.New("grid: size above maximum")
)

// Position addresses a cell as (Row, Col), both zero-based.
// Positions handed out by this module are always in bounds; positions
// received from callers are validated by the operation that consumes them.
type Position struct {
	Row, Col int
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Tile is a numbered piece together with its home position – the cell it
// occupies in the solved arrangement. Home is fixed at construction and
// never changes; only the tile's current cell on the board does.
type Tile struct {
	// Value is the printed label, 1..n²-1.
	Value int
	// Home is the tile's target position in the solved board.
	Home Position
}

// PlacedTile pairs a tile with its current position, as yielded by
// Grid.Tiles in row-major order.
type PlacedTile struct {
	Pos  Position
	Tile Tile
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
