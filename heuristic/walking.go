package heuristic

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tilath/grid"
)

// Tuning constants for table construction. The BFS depth cap bounds the
// work done per solved seed; the mixed-seed expansion fills signatures the
// pure BFS cannot reach, under its own iteration and depth budgets.
const (
	wdBFSDepthLimit    = 30
	wdSeedIterLimit    = 10000
	wdSeedDepthLimit   = 20
	wdSeedEnqueueLimit = 15

	// wdEmptyMarker tags the empty cell inside a line signature. 15 is
	// outside every legal line index (MaxSize is 15, so lines run 0..14)
	// and still fits the 4-bit packing.
	wdEmptyMarker = 15
)

// WalkingDistance scores a board by summing, over every row and every
// column, a precomputed swap count for sorting that line's signature – the
// multiset of target lines its tiles belong to, with the empty cell
// marked. A tile can only travel horizontally once in its target row (and
// vice versa), which is exactly what the line tables capture and plain
// Manhattan misses.
//
// Signatures reached by the pure BFS carry exact minimum swap counts;
// mixed signatures filled by the seeded expansion carry displacement
// estimates that can exceed the true minimum, so the summed score is NOT
// a guaranteed lower bound – see Admissible.
//
// Tables are built once per grid size, lazily, and cached process-wide;
// after construction they are immutable and safe to share across
// goroutines. Column lines reuse the row table by transposition symmetry.
type WalkingDistance struct {
	size int
}

// NewWalkingDistance returns the estimator for boards of the given size,
// building (and caching) the signature table on first use. Size bounds
// are the grid package's.
func NewWalkingDistance(size int) (*WalkingDistance, error) {
	if size < grid.MinSize {
		return nil, fmt.Errorf("%w: %d < %d", grid.ErrSizeTooSmall, size, grid.MinSize)
	}
	if size > grid.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", grid.ErrSizeTooLarge, size, grid.MaxSize)
	}
	tableFor(size) // warm the cache up front

	return &WalkingDistance{size: size}, nil
}

// Estimate implements Heuristic.
func (w *WalkingDistance) Estimate(g *grid.Grid) int {
	t := tableFor(g.Size())
	total := 0
	sig := make([]uint8, g.Size())
	for line := 0; line < g.Size(); line++ {
		rowSignature(g, line, sig)
		total += int(t.lookup(sig, line))
	}
	for line := 0; line < g.Size(); line++ {
		colSignature(g, line, sig)
		total += int(t.lookup(sig, line))
	}

	return total
}

// Admissible implements Heuristic. The answer is no: the seeded expansion
// that fills mixed signatures (the ones pure BFS from solved lines cannot
// reach) assigns displacement estimates rather than proven minimum swap
// counts, and those can exceed the true cost. Like Enhanced,
// WalkingDistance trades guaranteed optimality for pruning power;
// searches driven by it return valid but not provably shortest paths.
func (w *WalkingDistance) Admissible() bool { return false }

// Name implements Heuristic.
func (w *WalkingDistance) Name() string { return "walking-distance" }

// Signatures returns the number of distinct line signatures in the table,
// exposed for diagnostics and benchmarks.
func (w *WalkingDistance) Signatures() int {
	return len(tableFor(w.size).dist)
}

// rowSignature fills sig with, per column of the given row, the target row
// of the tile there; the empty cell gets wdEmptyMarker.
func rowSignature(g *grid.Grid, row int, sig []uint8) {
	n := g.Size()
	for col := 0; col < n; col++ {
		p := grid.Pos(row, col)
		if g.Empty() == p {
			sig[col] = wdEmptyMarker
			continue
		}
		tile, _ := g.TileAt(p)
		sig[col] = uint8(tile.Home.Row)
	}
}

// colSignature is the transposed counterpart of rowSignature.
func colSignature(g *grid.Grid, col int, sig []uint8) {
	n := g.Size()
	for row := 0; row < n; row++ {
		p := grid.Pos(row, col)
		if g.Empty() == p {
			sig[row] = wdEmptyMarker
			continue
		}
		tile, _ := g.TileAt(p)
		sig[row] = uint8(tile.Home.Col)
	}
}

// wdTable maps packed line signatures to minimum swap counts.
type wdTable struct {
	size int
	dist map[uint64]uint8
}

// Process-scoped table cache, keyed by grid size. Built under the lock,
// never mutated afterwards.
var (
	wdMu     sync.Mutex
	wdTables = make(map[int]*wdTable)
)

func tableFor(size int) *wdTable {
	wdMu.Lock()
	defer wdMu.Unlock()
	if t, ok := wdTables[size]; ok {
		return t
	}
	t := buildTable(size)
	wdTables[size] = t

	return t
}

// buildTable runs the two construction phases: BFS out of every uniform
// solved signature, then the seeded expansion that covers mixed
// signatures the solved seeds cannot produce by swapping equal values.
func buildTable(size int) *wdTable {
	t := &wdTable{size: size, dist: make(map[uint64]uint8)}

	type entry struct {
		sig  []uint8
		dist uint8
	}

	// Phase 1: each line solved toward a single target has distance 0.
	var queue []entry
	for target := 0; target < size; target++ {
		sig := make([]uint8, size)
		for i := range sig {
			sig[i] = uint8(target)
		}
		key := t.pack(sig)
		if _, ok := t.dist[key]; !ok {
			t.dist[key] = 0
			queue = append(queue, entry{sig: sig, dist: 0})
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.dist >= wdBFSDepthLimit {
			continue
		}
		for i := 0; i < size; i++ {
			for _, j := range lineNeighbors(i, size) {
				next := append([]uint8(nil), cur.sig...)
				next[i], next[j] = next[j], next[i]
				key := t.pack(next)
				if _, ok := t.dist[key]; !ok {
					t.dist[key] = cur.dist + 1
					queue = append(queue, entry{sig: next, dist: cur.dist + 1})
				}
			}
		}
	}

	// Phase 2: seed near-uniform mixed signatures with a displacement
	// estimate, then expand by adjacent swaps under the iteration budget.
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			sig := make([]uint8, size)
			for k := range sig {
				sig[k] = uint8(i)
			}
			sig[size-1] = uint8(j)

			key := t.pack(sig)
			if _, ok := t.dist[key]; ok {
				continue
			}
			var est uint8
			for _, v := range sig {
				if v != uint8(i) {
					est++
				}
			}
			t.dist[key] = est
			queue = append(queue, entry{sig: sig, dist: est})
		}
	}
	iterations := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		iterations++
		if iterations > wdSeedIterLimit || cur.dist >= wdSeedDepthLimit {
			continue
		}
		for i := 0; i < size; i++ {
			for _, j := range lineNeighbors(i, size) {
				next := append([]uint8(nil), cur.sig...)
				next[i], next[j] = next[j], next[i]
				key := t.pack(next)
				if _, ok := t.dist[key]; !ok {
					t.dist[key] = cur.dist + 1
					if cur.dist < wdSeedEnqueueLimit {
						queue = append(queue, entry{sig: next, dist: cur.dist + 1})
					}
				}
			}
		}
	}

	return t
}

// lookup returns the stored distance for sig. Signatures outside the
// table (mixed multisets, or any line holding the empty cell) fall back
// to counting foreign tiles: each needs at least one move out of the
// line. The empty marker is never a mismatch.
func (t *wdTable) lookup(sig []uint8, line int) uint8 {
	if d, ok := t.dist[t.pack(sig)]; ok {
		return d
	}

	var mismatches uint8
	for _, v := range sig {
		if v != uint8(line) && v != wdEmptyMarker {
			mismatches++
		}
	}

	return mismatches
}

// pack encodes a signature at 4 bits per position – the reason MaxSize
// is 15.
func (t *wdTable) pack(sig []uint8) uint64 {
	var key uint64
	for i, v := range sig {
		key |= uint64(v) << (4 * i)
	}

	return key
}

// lineNeighbors returns the 1-D adjacent indices of idx within a line.
func lineNeighbors(idx, size int) []int {
	out := make([]int, 0, 2)
	if idx > 0 {
		out = append(out, idx-1)
	}
	if idx < size-1 {
		out = append(out, idx+1)
	}

	return out
}
