package heuristic

import (
	"sort"

	"github.com/katalvlaran/tilath/grid"
)

// worstOffenders bounds how many displaced tiles the empty-cell analysis
// considers: beyond the few worst, positioning cost stops being additive.
const worstOffenders = 5

// EmptyCellPath estimates the extra cost of steering the empty cell to
// where it is actually needed, a factor plain Manhattan ignores entirely:
// a tile can only move when the hole is next to it. On top of the raw
// Manhattan sum it charges
//
//   - the hole's distance to each of the worstOffenders most displaced
//     tiles (or to their homes, whichever is nearer);
//   - half the hole's distance from the board center (a centered hole
//     reaches everything faster);
//   - a congestion charge per occupied neighbor of the hole, doubled when
//     that neighbor is already home (disturbing solved tiles is costly).
//
// The added terms can overestimate, so EmptyCellPath is NOT admissible.
// It is meant as a secondary ranking signal (shuffle difficulty scoring,
// tie-breaking), not as a primary A* driver.
// Complexity: O(N² log N) per call, dominated by sorting the offenders.
type EmptyCellPath struct{}

// Estimate implements Heuristic.
func (EmptyCellPath) Estimate(g *grid.Grid) int {
	base := Manhattan{}.Estimate(g)
	if base == 0 {
		// Solved: no positioning work remains.
		return 0
	}

	return base + emptyPositioningCost(g) + congestionCost(g)
}

// Admissible implements Heuristic. The positioning terms overestimate on
// many boards; never rely on EmptyCellPath for optimality guarantees.
func (EmptyCellPath) Admissible() bool { return false }

// Name implements Heuristic.
func (EmptyCellPath) Name() string { return "empty-cell-path" }

// emptyPositioningCost sums the hole-to-offender positioning distances for
// the most displaced tiles, plus the halved center-distance penalty.
func emptyPositioningCost(g *grid.Grid) int {
	empty := g.Empty()

	type offender struct {
		pos, home grid.Position
		dist      int
	}
	displaced := make([]offender, 0, g.Size()*g.Size())
	for _, pt := range g.Tiles() {
		if pt.Pos == pt.Tile.Home {
			continue
		}
		displaced = append(displaced, offender{
			pos:  pt.Pos,
			home: pt.Tile.Home,
			dist: pt.Pos.Manhattan(pt.Tile.Home),
		})
	}
	// Worst offenders first.
	sort.Slice(displaced, func(i, j int) bool { return displaced[i].dist > displaced[j].dist })
	if len(displaced) > worstOffenders {
		displaced = displaced[:worstOffenders]
	}

	cost := 0
	for _, o := range displaced {
		toTile := empty.Manhattan(o.pos)
		toHome := empty.Manhattan(o.home)
		cost += min(toTile, toHome)
	}

	center := grid.Pos(g.Size()/2, g.Size()/2)
	cost += empty.Manhattan(center) / 2

	return cost
}

// congestionCost charges 1 per tile neighboring the hole, 2 when that
// neighbor already sits on its home (moving it would undo progress).
func congestionCost(g *grid.Grid) int {
	empty := g.Empty()
	deltas := [4]grid.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

	cost := 0
	for _, d := range deltas {
		p := grid.Pos(empty.Row+d.Row, empty.Col+d.Col)
		tile, ok := g.TileAt(p)
		if !ok {
			continue
		}
		if tile.Home == p {
			cost += 2
		} else {
			cost++
		}
	}

	return cost
}
