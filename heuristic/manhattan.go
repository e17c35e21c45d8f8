package heuristic

import "github.com/katalvlaran/tilath/grid"

// Manhattan sums each tile's L1 distance from its home position.
// It is admissible and consistent: a single swap moves exactly one tile by
// exactly one cell, so the estimate changes by exactly ±1 per move.
// Complexity: O(N²) per call.
type Manhattan struct{}

// Estimate implements Heuristic.
func (Manhattan) Estimate(g *grid.Grid) int {
	total := 0
	for _, pt := range g.Tiles() {
		total += pt.Pos.Manhattan(pt.Tile.Home)
	}

	return total
}

// Admissible implements Heuristic; Manhattan never overestimates.
func (Manhattan) Admissible() bool { return true }

// Name implements Heuristic.
func (Manhattan) Name() string { return "manhattan" }
