// Package astar implements optimal sliding-puzzle search with the A*
// algorithm.
//
// The search orders work by f = g + h, where g is moves taken and h is
// the configured heuristic's estimate of moves remaining. Nodes live in
// a flat arena and refer to their parents by index, so path
// reconstruction is a backward walk instead of per-node path copies.
//
// Complexity:
//
//   - Time:  O(b^d) pops in the worst case, b = branching factor (≤ 4
//     without patterns), d = solution depth. The heuristic's quality is
//     what actually bounds the tree in practice.
//   - Space: O(nodes generated) for the arena, plus the closed set and
//     best-g map keyed by board fingerprints.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved paths push duplicate heap entries; a
//     popped entry whose fingerprint is already closed is skipped.
//   - Goal test on pop, not on generation, so the first goal popped is
//     optimal under an admissible heuristic.
//   - Equal-f ties prefer higher g (deeper nodes), which empirically
//     cuts thrashing among siblings near the goal.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/moves"
)

// Solve searches for a shortest move sequence that solves g.
//
// Returns:
//
//   - Result with the ordered tile positions to push, or
//   - ErrExhausted when the board is unsolvable,
//   - ErrIterationLimit when the ceiling trips first,
//   - ErrCancelled when the supplied context fires.
//
// The input grid is never mutated; the engine works on clones.
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}

	validator, err := moves.NewValidator(g.Size())
	if err != nil {
		return Result{}, fmt.Errorf("astar: %w", err)
	}

	r := &runner{
		options:   cfg,
		validator: validator,
		closed:    make(map[uint64]struct{}),
		bestG:     make(map[uint64]int),
	}

	start := time.Now()
	path, err := r.search(g)
	result := Result{Moves: path, Expanded: r.expanded, Elapsed: time.Since(start)}
	if err != nil {
		return result, err
	}

	return result, nil
}

// searchNode is one explored state in the arena. fromParent holds the
// move(s) that produced it: a single step for an immediate move, the
// full resolved sequence for a pattern edge.
type searchNode struct {
	state      *grid.Grid
	g          int
	h          int
	parent     int // arena index; -1 for the root
	fromParent []grid.Position
}

func (n *searchNode) f() int { return n.g + n.h }

// runner holds the mutable state for a single Solve execution.
type runner struct {
	options   Options
	validator *moves.Validator
	arena     []searchNode
	open      entryPQ
	closed    map[uint64]struct{}
	bestG     map[uint64]int
	expanded  int
}

// search runs the main A* loop and returns the reconstructed path.
func (r *runner) search(start *grid.Grid) ([]grid.Position, error) {
	if start.IsSolved() {
		return []grid.Position{}, nil
	}

	root := searchNode{
		state:  start.Clone(),
		g:      0,
		h:      r.options.Heuristic.Estimate(start),
		parent: -1,
	}
	r.arena = append(r.arena, root)
	heap.Init(&r.open)
	heap.Push(&r.open, &entry{f: root.f(), g: 0, nodeIdx: 0})
	r.bestG[start.Fingerprint()] = 0

	ctx := r.options.Ctx
	for r.open.Len() > 0 {
		idx := heap.Pop(&r.open).(*entry).nodeIdx
		r.expanded++

		if r.expanded%cancelCheckInterval == 0 && ctx != nil {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
			default:
			}
		}
		if r.expanded > r.options.MaxIterations {
			return nil, ErrIterationLimit
		}

		current := &r.arena[idx]
		if current.state.IsSolved() {
			return r.reconstruct(idx), nil
		}

		fp := current.state.Fingerprint()
		if _, done := r.closed[fp]; done {
			continue // stale heap entry
		}
		r.closed[fp] = struct{}{}

		empty := current.state.Empty()
		for _, next := range r.validator.ImmediateMoves(empty) {
			r.explore(idx, []grid.Position{next})
		}
		if r.options.Patterns != nil {
			for _, m := range r.options.Patterns.MatchAt(current.state, empty) {
				r.explore(idx, m.Moves)
			}
		}
	}

	return nil, ErrExhausted
}

// explore applies a move sequence (length 1 for immediate moves, longer
// for pattern edges) to the node at parentIdx and enqueues the successor
// when it improves on every previously known path to that state.
func (r *runner) explore(parentIdx int, seq []grid.Position) {
	next := r.arena[parentIdx].state.Clone()
	for _, pos := range seq {
		if !next.Apply(pos) {
			return
		}
	}

	tentativeG := r.arena[parentIdx].g + len(seq)
	fp := next.Fingerprint()

	if _, done := r.closed[fp]; done {
		return
	}
	if best, seen := r.bestG[fp]; seen && tentativeG >= best {
		return
	}
	r.bestG[fp] = tentativeG

	node := searchNode{
		state:      next,
		g:          tentativeG,
		h:          r.options.Heuristic.Estimate(next),
		parent:     parentIdx,
		fromParent: seq,
	}
	nodeIdx := len(r.arena)
	r.arena = append(r.arena, node)
	heap.Push(&r.open, &entry{f: node.f(), g: node.g, nodeIdx: nodeIdx})
}

// reconstruct walks parent indices from the goal back to the root,
// collecting each edge's move sequence, then reverses into start order.
func (r *runner) reconstruct(goalIdx int) []grid.Position {
	var reversed [][]grid.Position
	for idx := goalIdx; r.arena[idx].parent >= 0; idx = r.arena[idx].parent {
		reversed = append(reversed, r.arena[idx].fromParent)
	}

	var path []grid.Position
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i]...)
	}
	if path == nil {
		path = []grid.Position{}
	}

	return path
}

// entry is one open-set item. Duplicates for the same state are allowed
// (lazy decrease-key); stale ones are filtered against the closed set.
type entry struct {
	f       int
	g       int
	nodeIdx int
}

// entryPQ is a min-heap of *entry ordered by f ascending; equal f
// prefers the higher g.
type entryPQ []*entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].g > pq[j].g
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
