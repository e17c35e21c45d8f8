// Package idastar implements optimal sliding-puzzle search with
// iterative-deepening A*.
//
// Instead of an open set, the engine runs depth-first probes under an
// f = g + h threshold. A probe that exceeds the threshold prunes and
// reports the minimal exceeding f it saw; that value becomes the next
// round's threshold. Memory is O(depth) rather than O(states visited),
// which is why this engine scales to boards where A*'s arena does not
// fit.
//
// Correctness-preserving prunings:
//
//   - A move that would undo the move just taken is excluded at every
//     recursion step. Undoing is always legal but never on a shortest
//     path that avoids revisiting states.
//   - The threshold sequence only ever grows to actually-seen f values,
//     so the first solution found is optimal under an admissible
//     heuristic.
//
// An exhausted round that saw no deeper f (the bubble stays at MaxInt)
// proves unsolvability; the node budget tripping is a separate,
// inconclusive outcome.
package idastar

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/moves"
)

// noParent is an off-board marker for "no previous empty position"; it
// never equals a legal move candidate.
var noParent = grid.Pos(-1, -1)

// Solve searches for a shortest move sequence that solves g.
//
// Returns:
//
//   - Result with the ordered tile positions to push, or
//   - ErrExhausted when the board is unsolvable,
//   - ErrNodeLimit when the budget trips first,
//   - ErrCancelled when the supplied context fires.
//
// The input grid is never mutated; the engine works on a clone.
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
		return Result{}, fmt.Errorf("idastar: %w", err)
	}

	w := &walker{options: cfg, validator: validator}
	start := time.Now()
	path, err := w.search(g)
	result := Result{Moves: path, Visited: w.visited, Elapsed: time.Since(start)}
	if err != nil {
		return result, err
	}

	return result, nil
}

// walker holds the mutable state for a single Solve execution.
type walker struct {
	options   Options
	validator *moves.Validator
	path      []grid.Position
	visited   int
}

// search runs the deepening loop: probe at the current threshold, then
// raise it to the minimal exceeding f the probe reported.
func (w *walker) search(start *grid.Grid) ([]grid.Position, error) {
	if start.IsSolved() {
		return []grid.Position{}, nil
	}

	root := start.Clone()
	threshold := w.options.Heuristic.Estimate(root)
	for {
		found, minExceeded, err := w.probe(root, 0, threshold, noParent)
		if err != nil {
			return nil, err
		}
		if found {
			solution := make([]grid.Position, len(w.path))
			copy(solution, w.path)

			return solution, nil
		}
		if minExceeded == math.MaxInt {
			return nil, ErrExhausted
		}
		threshold = minExceeded
	}
}

// probe is the depth-limited DFS. It reports either "found" (the move
// sequence is in w.path) or the minimal f that exceeded the threshold
// along any pruned branch, math.MaxInt when nothing was deeper.
func (w *walker) probe(g *grid.Grid, gScore, threshold int, prevEmpty grid.Position) (bool, int, error) {
	w.visited++
	if w.visited > w.options.MaxNodes {
		return false, 0, ErrNodeLimit
	}
	if w.visited%cancelCheckInterval == 0 && w.options.Ctx != nil {
		select {
		case <-w.options.Ctx.Done():
			return false, 0, fmt.Errorf("%w: %w", ErrCancelled, w.options.Ctx.Err())
		default:
		}
	}

	f := gScore + w.options.Heuristic.Estimate(g)
	if f > threshold {
		return false, f, nil
	}
	if g.IsSolved() {
		return true, 0, nil
	}

	empty := g.Empty()
	minExceeded := math.MaxInt
	for _, next := range w.validator.ImmediateMoves(empty) {
		if next == prevEmpty {
			continue // would undo the move just taken
		}

		child := g.Clone()
		if !child.Apply(next) {
			continue
		}

		w.path = append(w.path, next)
		found, exceeded, err := w.probe(child, gScore+1, threshold, empty)
		if err != nil {
			return false, 0, err
		}
		if found {
			return true, 0, nil
		}
		if exceeded < minExceeded {
			minExceeded = exceeded
		}
		w.path = w.path[:len(w.path)-1]
	}

	return false, minExceeded, nil
}
