package pattern

import "github.com/katalvlaran/tilath/grid"

// Neighbor direction bits for the occupancy mask around the empty cell.
// Cardinal directions first, then diagonals.
const (
	maskUp uint8 = 1 << iota
	maskDown
	maskLeft
	maskRight
	maskUpLeft
	maskUpRight
	maskDownLeft
	maskDownRight
)

// neighborBits pairs each unit displacement with its mask bit.
var neighborBits = [8]struct {
	move RelMove
	bit  uint8
}{
	{Rel(-1, 0), maskUp},
	{Rel(1, 0), maskDown},
	{Rel(0, -1), maskLeft},
	{Rel(0, 1), maskRight},
	{Rel(-1, -1), maskUpLeft},
	{Rel(-1, 1), maskUpRight},
	{Rel(1, -1), maskDownLeft},
	{Rel(1, 1), maskDownRight},
}

// candidate is one (pattern, transform) pair with its moves transformed
// ahead of time, so match time pays no symmetry arithmetic.
type candidate struct {
	patternIdx int
	moves      []RelMove
}

// HashTable is the third-generation matcher. Building it expands every
// catalog pattern through all 8 transforms once and indexes the results
// by the occupancy bit the transformed first move requires. At search
// time, matching is a mask computation plus a short validation pass over
// the candidates whose precondition bit is present.
//
// The mask only encodes the first step, so every candidate is still
// revalidated move by move before it is reported. Results are therefore
// identical to running Pattern.MatchAt over the same catalog, just
// cheaper per node.
type HashTable struct {
	lookup   map[uint8][]candidate
	patterns []Pattern
}

// NewHashTable precomputes the lookup for the given catalog.
func NewHashTable(patterns []Pattern) *HashTable {
	lookup := make(map[uint8][]candidate)
	for idx, p := range patterns {
		for _, t := range AllTransforms() {
			transformed := make([]RelMove, len(p.moves))
			for i, m := range p.moves {
				transformed[i] = t.Apply(m)
			}
			bit, ok := firstMoveBit(transformed)
			if !ok {
				continue
			}
			lookup[bit] = append(lookup[bit], candidate{patternIdx: idx, moves: transformed})
		}
	}

	return &HashTable{lookup: lookup, patterns: patterns}
}

// NewDefaultHashTable indexes the fundamental catalog from RelCatalog.
func NewDefaultHashTable() *HashTable {
	return NewHashTable(RelCatalog())
}

// Candidates reports the total number of indexed (pattern, transform)
// entries; diagnostics only.
func (h *HashTable) Candidates() int {
	total := 0
	for _, c := range h.lookup {
		total += len(c)
	}

	return total
}

// MatchAt returns every catalog pattern that applies on g with the empty
// cell at empty. Candidates are fetched by the precondition bit of their
// first move, then fully revalidated.
func (h *HashTable) MatchAt(g *grid.Grid, empty grid.Position) []Match {
	mask := occupancyMask(g, empty)

	var matches []Match
	for required, candidates := range h.lookup {
		if mask&required != required {
			continue
		}
		for _, c := range candidates {
			abs, ok := resolveMoves(g, empty, c.moves)
			if !ok {
				continue
			}
			p := h.patterns[c.patternIdx]
			matches = append(matches, Match{Name: p.name, Moves: abs, Cost: p.cost})
		}
	}

	return matches
}

// occupancyMask reports which of the 8 neighbors of empty hold tiles.
func occupancyMask(g *grid.Grid, empty grid.Position) uint8 {
	var mask uint8
	for _, nb := range neighborBits {
		p, ok := nb.move.Apply(empty, g.Size())
		if !ok {
			continue
		}
		if _, occupied := g.TileAt(p); occupied {
			mask |= nb.bit
		}
	}

	return mask
}

// firstMoveBit maps a transformed pattern's opening move to its
// precondition bit. Patterns whose first move is not a unit displacement
// cannot be indexed.
func firstMoveBit(moves []RelMove) (uint8, bool) {
	if len(moves) == 0 {
		return 0, false
	}
	for _, nb := range neighborBits {
		if nb.move == moves[0] {
			return nb.bit, true
		}
	}

	return 0, false
}

// resolveMoves converts pre-transformed relative moves to absolute
// positions, validating bounds and occupancy with a simulated empty cell.
func resolveMoves(g *grid.Grid, empty grid.Position, moves []RelMove) ([]grid.Position, bool) {
	abs := make([]grid.Position, 0, len(moves))
	for _, m := range moves {
		target, ok := m.Apply(empty, g.Size())
		if !ok {
			return nil, false
		}
		if _, occupied := g.TileAt(target); !occupied {
			return nil, false
		}
		abs = append(abs, target)
		empty = target
	}

	return abs, true
}
