package pattern

import "github.com/katalvlaran/tilath/grid"

// RelCatalog returns the fundamental position-independent patterns. Each
// is stored once; the 8 symmetry transforms generalize it to every board
// orientation at match time.
func RelCatalog() []Pattern {
	return []Pattern{
		// Three-move cycle around a 2×2 block:
		//   □ A      C □
		//   B C  →   B A
		NewPattern("corner_rotation_cw", Rel(0, 1), Rel(1, 0), Rel(0, -1)),

		// Slide three tiles along a line, then turn:
		//   □ A B C  →  A B C □ ... then pull D up
		//   D
		NewPattern("linear_shift", Rel(0, 1), Rel(0, 1), Rel(0, 1), Rel(1, 0)),
	}
}

// MatchAt resolves the pattern against g with the empty cell at empty,
// trying each of the 8 transforms in order and returning the first that
// validates. A transform validates when every transformed move lands on
// an in-bounds cell that holds a tile, tracking the simulated empty cell
// after each step. Cost: O(8 × len(moves)).
func (p Pattern) MatchAt(g *grid.Grid, empty grid.Position) (Match, bool) {
	for _, t := range AllTransforms() {
		if abs, ok := p.resolve(g, empty, t); ok {
			return Match{Name: p.name, Moves: abs, Cost: p.cost}, true
		}
	}

	return Match{}, false
}

// resolve walks the pattern under one transform, producing absolute moves.
func (p Pattern) resolve(g *grid.Grid, empty grid.Position, t Transform) ([]grid.Position, bool) {
	abs := make([]grid.Position, 0, len(p.moves))
	for _, m := range p.moves {
		target, ok := t.Apply(m).Apply(empty, g.Size())
		if !ok {
			return nil, false
		}
		if _, occupied := g.TileAt(target); !occupied {
			return nil, false
		}
		abs = append(abs, target)
		// The empty cell trades places with the pushed tile.
		empty = target
	}

	return abs, true
}
