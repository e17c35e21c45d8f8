package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilath/astar"
	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/heuristic"
	"github.com/katalvlaran/tilath/shuffle"
)

// scrambled returns a solved board with the given moves applied.
func scrambled(t *testing.T, size int, seq ...grid.Position) *grid.Grid {
	t.Helper()
	g, err := grid.New(size)
	require.NoError(t, err)
	for _, p := range seq {
		require.True(t, g.Apply(p), "setup move %v", p)
	}

	return g
}

// replay applies a solution and requires it to end solved.
func replay(t *testing.T, g *grid.Grid, moves []grid.Position) {
	t.Helper()
	out := g.Clone()
	for _, p := range moves {
		require.True(t, out.Apply(p), "solution move %v must be legal", p)
	}
	require.True(t, out.IsSolved(), "solution must solve the board")
}

func TestSolve_NilGrid(t *testing.T) {
	_, err := astar.Solve(nil)
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}

func TestSolve_AlreadySolved(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.Empty(t, res.Moves)
	assert.Zero(t, res.Len())
}

func TestSolve_OneMove(t *testing.T) {
	g := scrambled(t, 3, grid.Pos(2, 1))

	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	replay(t, g, res.Moves)
}

func TestSolve_TwoMoves(t *testing.T) {
	g := scrambled(t, 3, grid.Pos(2, 1), grid.Pos(1, 1))

	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
	replay(t, g, res.Moves)
}

// TestSolve_FiveMoveScramble pins the optimal length of a known scramble.
func TestSolve_FiveMoveScramble(t *testing.T) {
	g := scrambled(t, 3,
		grid.Pos(2, 1), grid.Pos(1, 1), grid.Pos(0, 1), grid.Pos(0, 2), grid.Pos(1, 2))

	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Len())
	replay(t, g, res.Moves)
}

// TestSolve_AdmissibleHeuristicsAgree: admissible estimators yield the
// same optimal length on the same board.
func TestSolve_AdmissibleHeuristicsAgree(t *testing.T) {
	admissible := []heuristic.Heuristic{
		heuristic.Manhattan{},
		heuristic.LinearConflict{},
	}

	g, err := grid.New(3)
	require.NoError(t, err)
	s, err := shuffle.NewShuffler(3, 17)
	require.NoError(t, err)
	s.Walk(g, 22)

	lengths := make(map[int]bool)
	for _, h := range admissible {
		res, err := astar.Solve(g, astar.WithHeuristic(h))
		require.NoError(t, err, h.Name())
		replay(t, g, res.Moves)
		lengths[res.Len()] = true
	}
	assert.Len(t, lengths, 1, "admissible heuristics must agree on length")
}

// TestSolve_WalkingDistanceSolves: the table-driven estimator produces a
// valid solution end to end.
func TestSolve_WalkingDistanceSolves(t *testing.T) {
	wd, err := heuristic.NewWalkingDistance(3)
	require.NoError(t, err)

	g, err := grid.New(3)
	require.NoError(t, err)
	s, err := shuffle.NewShuffler(3, 17)
	require.NoError(t, err)
	s.Walk(g, 22)

	res, err := astar.Solve(g, astar.WithHeuristic(wd))
	require.NoError(t, err)
	replay(t, g, res.Moves)
}

// TestSolve_RoundTripIdempotent: replaying a solution and solving the
// result yields the empty path.
func TestSolve_RoundTripIdempotent(t *testing.T) {
	g := scrambled(t, 3, grid.Pos(2, 1), grid.Pos(1, 1), grid.Pos(1, 0))

	res, err := astar.Solve(g)
	require.NoError(t, err)

	solved := g.Clone()
	for _, p := range res.Moves {
		require.True(t, solved.Apply(p))
	}
	again, err := astar.Solve(solved)
	require.NoError(t, err)
	assert.Empty(t, again.Moves)
}

func TestSolve_IterationLimit(t *testing.T) {
	g := scrambled(t, 3,
		grid.Pos(2, 1), grid.Pos(1, 1), grid.Pos(0, 1), grid.Pos(0, 2), grid.Pos(1, 2))

	_, err := astar.Solve(g, astar.WithMaxIterations(1))
	assert.ErrorIs(t, err, astar.ErrIterationLimit)
}

func TestSolve_Cancellation(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	s, err := shuffle.NewShuffler(4, 1234)
	require.NoError(t, err)
	s.Walk(g, 60)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already cancelled; the search must notice at the first check

	_, err = astar.Solve(g,
		astar.WithHeuristic(heuristic.Manhattan{}),
		astar.WithContext(ctx))
	assert.ErrorIs(t, err, astar.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled, "the context's own cause stays matchable")
}

func TestSolve_ReportsCounters(t *testing.T) {
	g := scrambled(t, 3, grid.Pos(2, 1), grid.Pos(1, 1))

	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.Positive(t, res.Expanded)
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}
