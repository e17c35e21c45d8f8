package pattern

import "github.com/katalvlaran/tilath/grid"

// RelMove is a single empty-cell displacement expressed as row/column
// deltas, independent of any absolute board coordinate.
type RelMove struct {
	DRow int
	DCol int
}

// Rel constructs a RelMove.
func Rel(dRow, dCol int) RelMove {
	return RelMove{DRow: dRow, DCol: dCol}
}

// Apply resolves the relative move against an absolute position on an
// N×N board. The second return is false when the result falls off-grid.
func (m RelMove) Apply(p grid.Position, size int) (grid.Position, bool) {
	q := grid.Pos(p.Row+m.DRow, p.Col+m.DCol)
	if q.Row < 0 || q.Col < 0 || q.Row >= size || q.Col >= size {
		return grid.Position{}, false
	}

	return q, true
}

// RotateCW rotates the move 90° clockwise: (row, col) → (col, -row).
func (m RelMove) RotateCW() RelMove {
	return Rel(m.DCol, -m.DRow)
}

// MirrorH flips the move left-right: (row, col) → (row, -col).
func (m RelMove) MirrorH() RelMove {
	return Rel(m.DRow, -m.DCol)
}

// MirrorV flips the move top-bottom: (row, col) → (-row, col).
func (m RelMove) MirrorV() RelMove {
	return Rel(-m.DRow, m.DCol)
}

// Transform is one of the 8 board symmetries used to generalize a
// pattern across every orientation without storing 8 copies of it.
type Transform uint8

const (
	TransformIdentity Transform = iota
	TransformRotate90
	TransformRotate180
	TransformRotate270
	TransformMirrorH
	TransformMirrorV
	// TransformMirrorD1 reflects across the main diagonal.
	TransformMirrorD1
	// TransformMirrorD2 reflects across the anti-diagonal.
	TransformMirrorD2

	numTransforms = 8
)

// AllTransforms returns the full symmetry group in a stable order.
func AllTransforms() [numTransforms]Transform {
	return [numTransforms]Transform{
		TransformIdentity, TransformRotate90, TransformRotate180, TransformRotate270,
		TransformMirrorH, TransformMirrorV, TransformMirrorD1, TransformMirrorD2,
	}
}

// Apply maps a relative move through the symmetry.
func (t Transform) Apply(m RelMove) RelMove {
	switch t {
	case TransformRotate90:
		return m.RotateCW()
	case TransformRotate180:
		return m.RotateCW().RotateCW()
	case TransformRotate270:
		return m.RotateCW().RotateCW().RotateCW()
	case TransformMirrorH:
		return m.MirrorH()
	case TransformMirrorV:
		return m.MirrorV()
	case TransformMirrorD1:
		return Rel(m.DCol, m.DRow)
	case TransformMirrorD2:
		return Rel(-m.DCol, -m.DRow)
	default:
		return m
	}
}

// Pattern is an immutable catalog entry: a named macro-move stored as a
// sequence of relative empty-cell displacements. Cost always equals the
// move count so a matched pattern folds into a search as one edge of
// weight Cost.
type Pattern struct {
	name  string
	moves []RelMove
	cost  int
}

// NewPattern builds a Pattern; cost is derived from the move count.
func NewPattern(name string, moves ...RelMove) Pattern {
	return Pattern{name: name, moves: moves, cost: len(moves)}
}

// Name returns the catalog name.
func (p Pattern) Name() string { return p.name }

// Moves returns the relative move sequence. Callers must not mutate it.
func (p Pattern) Moves() []RelMove { return p.moves }

// Cost returns the number of single-step moves the pattern expands to.
func (p Pattern) Cost() int { return p.cost }

// Match is a pattern resolved against a live board: the literal absolute
// tile positions to push, in order, plus the cost to charge the search.
type Match struct {
	Name  string
	Moves []grid.Position
	Cost  int
}
