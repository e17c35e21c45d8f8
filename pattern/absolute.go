package pattern

import "github.com/katalvlaran/tilath/grid"

// FixedPattern is the first-generation catalog entry: a macro-move pinned
// to one literal board coordinate. It only fires when the empty cell sits
// exactly at Start, which makes matching a single comparison but leaves
// every other board position uncovered.
type FixedPattern struct {
	Name  string
	Start grid.Position
	Moves []grid.Position
}

// Cost is the number of single-step moves the pattern expands to.
func (p FixedPattern) Cost() int { return len(p.Moves) }

// Catalog holds fixed-position patterns for one board size.
//
// Kept as the correctness baseline for the relative and hash-indexed
// matchers; production searches use HashTable.
type Catalog struct {
	size     int
	patterns []FixedPattern
}

// NewCatalog builds the hand-coded catalog for an N×N board: clockwise
// rotations at all four corners, plus two edge shifts anchored at the
// top-left on 4×4 boards.
func NewCatalog(size int) (*Catalog, error) {
	if size < grid.MinSize {
		return nil, grid.ErrSizeTooSmall
	}
	if size > grid.MaxSize {
		return nil, grid.ErrSizeTooLarge
	}

	n := size - 1
	patterns := []FixedPattern{
		{
			Name:  "top_left_corner_cw",
			Start: grid.Pos(0, 0),
			Moves: []grid.Position{grid.Pos(0, 1), grid.Pos(1, 1), grid.Pos(1, 0)},
		},
		{
			Name:  "top_right_corner_cw",
			Start: grid.Pos(0, n),
			Moves: []grid.Position{grid.Pos(1, n), grid.Pos(1, n-1), grid.Pos(0, n-1)},
		},
		{
			Name:  "bottom_right_corner_cw",
			Start: grid.Pos(n, n),
			Moves: []grid.Position{grid.Pos(n, n-1), grid.Pos(n-1, n-1), grid.Pos(n-1, n)},
		},
		{
			Name:  "bottom_left_corner_cw",
			Start: grid.Pos(n, 0),
			Moves: []grid.Position{grid.Pos(n-1, 0), grid.Pos(n-1, 1), grid.Pos(n, 1)},
		},
	}

	if size == 4 {
		patterns = append(patterns,
			FixedPattern{
				Name:  "top_row_shift_right",
				Start: grid.Pos(0, 0),
				Moves: []grid.Position{grid.Pos(0, 1), grid.Pos(0, 2)},
			},
			FixedPattern{
				Name:  "left_col_shift_down",
				Start: grid.Pos(0, 0),
				Moves: []grid.Position{grid.Pos(1, 0), grid.Pos(2, 0)},
			},
		)
	}

	return &Catalog{size: size, patterns: patterns}, nil
}

// Patterns returns the catalog entries. Callers must not mutate them.
func (c *Catalog) Patterns() []FixedPattern { return c.patterns }

// MatchAt returns every fixed pattern whose anchor equals the current
// empty position and whose move sequence validates on g.
func (c *Catalog) MatchAt(g *grid.Grid, empty grid.Position) []Match {
	var matches []Match
	for _, p := range c.patterns {
		if p.Start != empty {
			continue
		}
		if !c.validates(g, empty, p.Moves) {
			continue
		}
		matches = append(matches, Match{Name: p.Name, Moves: p.Moves, Cost: p.Cost()})
	}

	return matches
}

// validates replays the absolute moves against a simulated empty cell:
// each step must be 4-adjacent to the hole and hold a tile.
func (c *Catalog) validates(g *grid.Grid, empty grid.Position, seq []grid.Position) bool {
	for _, target := range seq {
		if target.Manhattan(empty) != 1 {
			return false
		}
		if _, occupied := g.TileAt(target); !occupied {
			return false
		}
		empty = target
	}

	return true
}
