package grid

import "fmt"

// Grid is an N×N sliding-tile board: every cell holds either a numbered
// tile or the single empty cell. The shape is fixed at construction; tile
// placement mutates in place through Apply, the only mutating primitive.
//
// A Grid exclusively owns its cells. Search engines that branch must work
// on Clone()d copies – sibling branches never share mutable state.
type Grid struct {
	cells []Tile // row-major; the empty cell holds the zero Tile
	has   []bool // has[i] reports whether cells[i] holds a tile
	empty Position
	size  int
}

// New constructs the solved board of the given size: tiles 1..n²-1 in
// row-major order, empty cell bottom-right.
//
// Returns ErrSizeTooSmall or ErrSizeTooLarge (wrapped with the offending
// value and the violated bound) when size is outside [MinSize, MaxSize].
// Complexity: O(N²).
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d < %d", ErrSizeTooSmall, size, MinSize)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, size, MaxSize)
	}

	g := &Grid{
		cells: make([]Tile, size*size),
		has:   make([]bool, size*size),
		empty: Pos(size-1, size-1),
		size:  size,
	}
	value := 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if row == size-1 && col == size-1 {
				continue // last cell stays empty
			}
			idx := row*size + col
			g.cells[idx] = Tile{Value: value, Home: Pos(row, col)}
			g.has[idx] = true
			value++
		}
	}

	return g, nil
}

// Size returns the board dimension N.
func (g *Grid) Size() int { return g.size }

// Empty returns the current position of the empty cell.
func (g *Grid) Empty() Position { return g.empty }

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// TileAt returns the tile at p. The second result is false for the empty
// cell and for out-of-range positions – reads never fail, they just report
// "no tile there".
// Complexity: O(1).
func (g *Grid) TileAt(p Position) (Tile, bool) {
	if !g.InBounds(p) {
		return Tile{}, false
	}
	idx := p.Row*g.size + p.Col
	if !g.has[idx] {
		return Tile{}, false
	}

	return g.cells[idx], true
}

// Find returns the current position of the tile whose home is home.
// The second result is false when no tile has that home (e.g. the home of
// the empty cell).
// Complexity: O(N²).
func (g *Grid) Find(home Position) (Position, bool) {
	for idx, ok := range g.has {
		if ok && g.cells[idx].Home == home {
			return Pos(idx/g.size, idx%g.size), true
		}
	}

	return Position{}, false
}

// Apply swaps the tile at from with the empty cell iff from is
// 4-directionally adjacent to it. Returns false – leaving the board
// untouched – for any other position. Illegal moves are an expected,
// frequent event during search, not an error.
// Complexity: O(1).
func (g *Grid) Apply(from Position) bool {
	if !g.adjacent(from, g.empty) {
		return false
	}
	fromIdx := from.Row*g.size + from.Col
	emptyIdx := g.empty.Row*g.size + g.empty.Col

	g.cells[emptyIdx] = g.cells[fromIdx]
	g.has[emptyIdx] = true
	g.cells[fromIdx] = Tile{}
	g.has[fromIdx] = false
	g.empty = from

	return true
}

// ApplyChain slides the whole line between target and the empty cell,
// expressed as repeated Apply calls: the hole steps toward the target one
// cell at a time, so closer tiles move first. Legal only when target
// shares a row or column with the empty cell; returns false otherwise.
// The same decomposition as an explicit move list is
// moves.Validator.ResolveChain, which owns it.
func (g *Grid) ApplyChain(target Position) bool {
	if !g.InBounds(target) || target == g.empty {
		return false
	}
	if target.Row != g.empty.Row && target.Col != g.empty.Col {
		return false
	}
	for g.empty != target {
		next := g.empty
		switch {
		case target.Row < next.Row:
			next.Row--
		case target.Row > next.Row:
			next.Row++
		case target.Col < next.Col:
			next.Col--
		default:
			next.Col++
		}
		if !g.Apply(next) {
			return false
		}
	}

	return true
}

// IsSolved reports whether every tile currently sits on its home position.
// Complexity: O(N²).
func (g *Grid) IsSolved() bool {
	for idx, ok := range g.has {
		if !ok {
			continue
		}
		if g.cells[idx].Home != Pos(idx/g.size, idx%g.size) {
			return false
		}
	}

	return true
}

// Tiles returns every placed tile with its current position, in row-major
// order. The slice is freshly allocated; callers may keep or re-iterate it.
// Complexity: O(N²).
func (g *Grid) Tiles() []PlacedTile {
	out := make([]PlacedTile, 0, g.size*g.size-1)
	for idx, ok := range g.has {
		if !ok {
			continue
		}
		out = append(out, PlacedTile{
			Pos:  Pos(idx/g.size, idx%g.size),
			Tile: g.cells[idx],
		})
	}

	return out
}

// Clone returns a deep copy sharing no mutable state with g.
// Search engines clone once per branch; keeping this cheap matters more
// than keeping it clever.
// Complexity: O(N²).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cells: make([]Tile, len(g.cells)),
		has:   make([]bool, len(g.has)),
		empty: g.empty,
		size:  g.size,
	}
	copy(c.cells, g.cells)
	copy(c.has, g.has)

	return c
}

// adjacent reports 4-directional adjacency between p and q.
func (g *Grid) adjacent(p, q Position) bool {
	if !g.InBounds(p) || !g.InBounds(q) {
		return false
	}

	return (p.Row == q.Row && abs(p.Col-q.Col) == 1) ||
		(p.Col == q.Col && abs(p.Row-q.Row) == 1)
}
