package astar_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilath/astar"
	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/idastar"
	"github.com/katalvlaran/tilath/pattern"
	"github.com/katalvlaran/tilath/shuffle"
)

// scrambleCase is one seeded random board for the engine cross-checks.
type scrambleCase struct {
	size int
	seed int64
	walk int
}

// crossCheckCases covers both board sizes with enough seeds to satisfy
// the twenty-plus scramble requirement of the equivalence checks.
func crossCheckCases() []scrambleCase {
	var cases []scrambleCase
	for seed := int64(1); seed <= 12; seed++ {
		cases = append(cases, scrambleCase{size: 3, seed: seed, walk: 24})
	}
	for seed := int64(1); seed <= 10; seed++ {
		cases = append(cases, scrambleCase{size: 4, seed: seed, walk: 18})
	}

	return cases
}

func (c scrambleCase) board(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(c.size)
	require.NoError(t, err)
	s, err := shuffle.NewShuffler(c.size, c.seed)
	require.NoError(t, err)
	s.Walk(g, c.walk)

	return g
}

// TestSolve_PatternAcceleratedMatchesPlain: macro-move acceleration
// changes search speed, never solution length.
func TestSolve_PatternAcceleratedMatchesPlain(t *testing.T) {
	table := pattern.NewDefaultHashTable()
	for _, c := range crossCheckCases() {
		c := c
		t.Run(fmt.Sprintf("%dx%d_seed%d", c.size, c.size, c.seed), func(t *testing.T) {
			g := c.board(t)

			plain, err := astar.Solve(g)
			require.NoError(t, err)

			accelerated, err := astar.Solve(g, astar.WithPatterns(table))
			require.NoError(t, err)

			assert.Equal(t, plain.Len(), accelerated.Len())
			replay(t, g, accelerated.Moves)
		})
	}
}

// TestSolve_AgreesWithIDAStar: the two engines are optimality
// cross-checks for each other.
func TestSolve_AgreesWithIDAStar(t *testing.T) {
	for _, c := range crossCheckCases() {
		if c.size != 3 {
			continue // deepening revisits make 4×4 rounds slow; 3×3 covers the property
		}
		c := c
		t.Run(fmt.Sprintf("seed%d", c.seed), func(t *testing.T) {
			g := c.board(t)

			a, err := astar.Solve(g)
			require.NoError(t, err)

			ida, err := idastar.Solve(g)
			require.NoError(t, err)

			assert.Equal(t, a.Len(), ida.Len())
			replay(t, g, ida.Moves)
		})
	}
}
