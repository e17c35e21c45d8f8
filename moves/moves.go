// Package moves implements the legal-move topology for N×N sliding puzzles.
package moves

import (
	"fmt"

	"github.com/katalvlaran/tilath/grid"
)

// Validator answers legality questions for a fixed board dimension.
// It carries no mutable state and is safe to share across goroutines.
type Validator struct {
	size int
}

// NewValidator constructs a Validator for boards of the given dimension.
// Size bounds are the grid package's: [grid.MinSize, grid.MaxSize].
// Returns grid.ErrSizeTooSmall or grid.ErrSizeTooLarge otherwise.
func NewValidator(size int) (*Validator, error) {
	if size < grid.MinSize {
		return nil, fmt.Errorf("%w: %d < %d", grid.ErrSizeTooSmall, size, grid.MinSize)
	}
	if size > grid.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", grid.ErrSizeTooLarge, size, grid.MaxSize)
	}

	return &Validator{size: size}, nil
}

// Size returns the board dimension this validator was built for.
func (v *Validator) Size() int { return v.size }

// ImmediateMoves returns the 2–4 cells orthogonally adjacent to empty,
// clipped to the board. These are exactly the tiles that can slide into
// the hole in one step.
// Complexity: O(1).
func (v *Validator) ImmediateMoves(empty grid.Position) []grid.Position {
	out := make([]grid.Position, 0, 4)
	if empty.Row > 0 {
		out = append(out, grid.Pos(empty.Row-1, empty.Col))
	}
	if empty.Row < v.size-1 {
		out = append(out, grid.Pos(empty.Row+1, empty.Col))
	}
	if empty.Col > 0 {
		out = append(out, grid.Pos(empty.Row, empty.Col-1))
	}
	if empty.Col < v.size-1 {
		out = append(out, grid.Pos(empty.Row, empty.Col+1))
	}

	return out
}

// AllLegalMoves returns every position a user gesture may target: the
// immediate neighbors plus every chain destination sharing the empty
// cell's row or column. Order is unspecified.
// Complexity: O(N).
func (v *Validator) AllLegalMoves(empty grid.Position) []grid.Position {
	seen := make(map[grid.Position]struct{}, 2*v.size)
	for _, p := range v.ImmediateMoves(empty) {
		seen[p] = struct{}{}
	}
	for col := 0; col < v.size; col++ {
		if col != empty.Col {
			seen[grid.Pos(empty.Row, col)] = struct{}{}
		}
	}
	for row := 0; row < v.size; row++ {
		if row != empty.Row {
			seen[grid.Pos(row, empty.Col)] = struct{}{}
		}
	}

	out := make([]grid.Position, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}

	return out
}

// IsAdjacent reports whether pos touches empty 4-directionally.
func (v *Validator) IsAdjacent(pos, empty grid.Position) bool {
	return (pos.Row == empty.Row && abs(pos.Col-empty.Col) == 1) ||
		(pos.Col == empty.Col && abs(pos.Row-empty.Row) == 1)
}

// IsLegal reports whether pos can reach the empty cell at all – i.e. it
// shares a row or a column with it (immediate or chain move).
func (v *Validator) IsLegal(pos, empty grid.Position) bool {
	if !v.inBounds(pos) || pos == empty {
		return false
	}

	return pos.Row == empty.Row || pos.Col == empty.Col
}

// ResolveChain decomposes the gesture "slide the line from target toward
// the hole" into the ordered single-step moves realizing it: the cell
// nearest the hole moves first, target last. An adjacent target resolves
// to a single-element sequence. Returns nil for diagonal or out-of-range
// targets – nil is the "not a legal gesture" signal, not an error.
// Complexity: O(N).
func (v *Validator) ResolveChain(target, empty grid.Position) []grid.Position {
	if !v.IsLegal(target, empty) {
		return nil
	}
	if v.IsAdjacent(target, empty) {
		return []grid.Position{target}
	}

	var steps []grid.Position
	switch {
	case target.Row == empty.Row && target.Col < empty.Col:
		for col := empty.Col - 1; col >= target.Col; col-- {
			steps = append(steps, grid.Pos(target.Row, col))
		}
	case target.Row == empty.Row:
		for col := empty.Col + 1; col <= target.Col; col++ {
			steps = append(steps, grid.Pos(target.Row, col))
		}
	case target.Row < empty.Row:
		for row := empty.Row - 1; row >= target.Row; row-- {
			steps = append(steps, grid.Pos(row, target.Col))
		}
	default:
		for row := empty.Row + 1; row <= target.Row; row++ {
			steps = append(steps, grid.Pos(row, target.Col))
		}
	}

	return steps
}

func (v *Validator) inBounds(p grid.Position) bool {
	return p.Row >= 0 && p.Row < v.size && p.Col >= 0 && p.Col < v.size
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
