package heuristic

import "github.com/katalvlaran/tilath/grid"

// Penalty weights for the Enhanced estimator. Empirical: corner tiles need
// roughly 2–4 extra moves to place, crowded last-line tiles roughly 1–2.
const (
	cornerPenalty = 3
	edgePenalty   = 2
)

// Enhanced layers two empirical penalties on top of LinearConflict:
//
//   - +3 per displaced corner tile (corners are the most constrained cells);
//   - +2 per misplaced tile in the last row/column, applied only when more
//     than one such tile is wrong (a single displacement is already priced
//     by Manhattan; the crowding penalty targets interlocked tiles).
//
// The penalties can overestimate the true remaining cost, so Enhanced is
// NOT admissible: searches using it trade guaranteed optimality for a much
// smaller search tree. That trade-off is deliberate and opt-in – see
// Admissible.
// Complexity: O(N³) per call, dominated by the conflict scan.
type Enhanced struct{}

// Estimate implements Heuristic.
func (Enhanced) Estimate(g *grid.Grid) int {
	return LinearConflict{}.Estimate(g) + cornerScore(g) + edgeScore(g)
}

// Admissible implements Heuristic. Enhanced may overestimate; A* results
// driven by it are valid solutions but not provably shortest.
func (Enhanced) Admissible() bool { return false }

// Name implements Heuristic.
func (Enhanced) Name() string { return "enhanced" }

// cornerScore charges cornerPenalty for every corner occupied by a tile
// that does not belong there. The empty cell is skipped.
func cornerScore(g *grid.Grid) int {
	n := g.Size()
	corners := [4]grid.Position{
		grid.Pos(0, 0),
		grid.Pos(0, n-1),
		grid.Pos(n-1, 0),
		grid.Pos(n-1, n-1),
	}

	score := 0
	for _, corner := range corners {
		if g.Empty() == corner {
			continue
		}
		if tile, ok := g.TileAt(corner); ok && tile.Home != corner {
			score += cornerPenalty
		}
	}

	return score
}

// edgeScore charges edgePenalty per wrong tile in the last row (and,
// independently, the last column) – but only when more than one tile in
// that line is wrong, to avoid double-charging single displacements.
func edgeScore(g *grid.Grid) int {
	n := g.Size()

	lastRowWrong := 0
	for col := 0; col < n; col++ {
		p := grid.Pos(n-1, col)
		if g.Empty() == p {
			continue
		}
		if tile, ok := g.TileAt(p); ok && tile.Home.Row != n-1 {
			lastRowWrong++
		}
	}

	lastColWrong := 0
	for row := 0; row < n; row++ {
		p := grid.Pos(row, n-1)
		if g.Empty() == p {
			continue
		}
		if tile, ok := g.TileAt(p); ok && tile.Home.Col != n-1 {
			lastColWrong++
		}
	}

	score := 0
	if lastRowWrong > 1 {
		score += lastRowWrong * edgePenalty
	}
	if lastColWrong > 1 {
		score += lastColWrong * edgePenalty
	}

	return score
}
