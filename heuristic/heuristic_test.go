package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/heuristic"
)

// all returns one instance of every estimator for boards of the given size.
func all(t *testing.T, size int) []heuristic.Heuristic {
	t.Helper()
	wd, err := heuristic.NewWalkingDistance(size)
	require.NoError(t, err)

	return []heuristic.Heuristic{
		heuristic.Manhattan{},
		heuristic.LinearConflict{},
		heuristic.Enhanced{},
		wd,
		heuristic.EmptyCellPath{},
	}
}

// TestEstimate_SolvedIsZero: every variant scores a solved board as 0.
func TestEstimate_SolvedIsZero(t *testing.T) {
	for _, size := range []int{3, 4} {
		g, err := grid.New(size)
		require.NoError(t, err)
		for _, h := range all(t, size) {
			assert.Zerof(t, h.Estimate(g), "%s on solved %d×%d", h.Name(), size, size)
		}
	}
}

// TestAdmissibility_Flags pins the documented admissibility of each variant.
func TestAdmissibility_Flags(t *testing.T) {
	want := map[string]bool{
		"manhattan":        true,
		"linear-conflict":  true,
		"enhanced":         false,
		"walking-distance": false,
		"empty-cell-path":  false,
	}
	for _, h := range all(t, 4) {
		assert.Equal(t, want[h.Name()], h.Admissible(), h.Name())
	}
}

// TestManhattan_SingleMoveMonotonicity: one swap from solved costs exactly 1.
func TestManhattan_SingleMoveMonotonicity(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	require.True(t, g.Apply(grid.Pos(3, 2)))

	assert.Equal(t, 1, heuristic.Manhattan{}.Estimate(g))
	assert.Equal(t, 1, heuristic.LinearConflict{}.Estimate(g), "no conflict from a single swap")
}

func TestManhattan_AccumulatesOverWalk(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	h := heuristic.Manhattan{}

	prev := h.Estimate(g)
	for _, p := range []grid.Position{grid.Pos(3, 2), grid.Pos(2, 2)} {
		require.True(t, g.Apply(p))
		cur := h.Estimate(g)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

// TestLinearConflict_DominatesManhattan scrambles a board and checks the
// conflict-augmented estimate never drops below plain Manhattan.
func TestLinearConflict_DominatesManhattan(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	for _, p := range []grid.Position{
		grid.Pos(1, 2), grid.Pos(0, 2), grid.Pos(0, 1), grid.Pos(1, 1),
		grid.Pos(1, 0), grid.Pos(0, 0), grid.Pos(0, 1), grid.Pos(1, 1),
	} {
		require.True(t, g.Apply(p), "setup move %v", p)
	}

	lc := heuristic.LinearConflict{}.Estimate(g)
	mh := heuristic.Manhattan{}.Estimate(g)
	assert.GreaterOrEqual(t, lc, mh)
}

func TestEnhanced_DominatesLinearConflict(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	for _, p := range []grid.Position{grid.Pos(3, 2), grid.Pos(3, 1), grid.Pos(2, 1)} {
		require.True(t, g.Apply(p))
	}

	assert.GreaterOrEqual(t,
		heuristic.Enhanced{}.Estimate(g),
		heuristic.LinearConflict{}.Estimate(g))
}

func TestWalkingDistance_Basics(t *testing.T) {
	_, err := heuristic.NewWalkingDistance(2)
	assert.ErrorIs(t, err, grid.ErrSizeTooSmall)

	wd, err := heuristic.NewWalkingDistance(3)
	require.NoError(t, err)
	assert.Greater(t, wd.Signatures(), 10, "table should hold many signatures")

	g, err := grid.New(3)
	require.NoError(t, err)
	require.True(t, g.Apply(grid.Pos(2, 1)))

	got := wd.Estimate(g)
	assert.GreaterOrEqual(t, got, 1, "one move away scores at least 1")
	assert.LessOrEqual(t, got, 4, "one move away must not explode")
}

func TestWalkingDistance_AtLeastRowColManhattan(t *testing.T) {
	wd, err := heuristic.NewWalkingDistance(4)
	require.NoError(t, err)

	g, err := grid.New(4)
	require.NoError(t, err)
	for _, p := range []grid.Position{
		grid.Pos(3, 2), grid.Pos(3, 1), grid.Pos(3, 0), grid.Pos(2, 0),
	} {
		require.True(t, g.Apply(p))
	}

	assert.GreaterOrEqual(t, wd.Estimate(g), heuristic.Manhattan{}.Estimate(g))
}

func TestEmptyCellPath_SecondarySignal(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	for _, p := range []grid.Position{grid.Pos(3, 2), grid.Pos(2, 2), grid.Pos(2, 1)} {
		require.True(t, g.Apply(p))
	}

	ec := heuristic.EmptyCellPath{}.Estimate(g)
	mh := heuristic.Manhattan{}.Estimate(g)
	assert.GreaterOrEqual(t, ec, mh, "positioning terms only ever add cost")
}
