// Package shuffle scrambles boards by randomized reversible walks.
package shuffle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/heuristic"
	"github.com/katalvlaran/tilath/moves"
)

// scrambleAttemptLimit caps entropy-targeted scrambling so a too-ambitious
// threshold degrades into "best effort" instead of spinning forever.
const scrambleAttemptLimit = 1000

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// Difficulty selects a target disorder level for Scramble.
type Difficulty int

const (
	// Easy targets entropy ≥ N²/2.
	Easy Difficulty = iota
	// Medium targets entropy ≥ N².
	Medium
	// Hard targets entropy ≥ 2·N².
	Hard
)

// MinEntropy returns the minimum heuristic score a board must reach to
// qualify for this difficulty on an N×N grid. Heuristic values, tuned for
// Manhattan-family estimators.
func (d Difficulty) MinEntropy(size int) int {
	scale := size * size
	switch d {
	case Easy:
		return scale / 2
	case Hard:
		return scale * 2
	default:
		return scale
	}
}

// Shuffler scrambles boards of a fixed size with single-step moves only.
// Because every step is an individually reversible legal move from the
// previous state, any walk from a solved board stays solvable by
// construction – no permutation-parity check is ever needed.
//
// A Shuffler is deterministic for a given seed and is not safe for
// concurrent use (it owns a *rand.Rand).
type Shuffler struct {
	validator *moves.Validator
	rng       *rand.Rand
}

// NewShuffler builds a Shuffler for boards of the given size. Seed 0
// selects the stable default seed; any other value is used verbatim.
// Size bounds are the grid package's.
func NewShuffler(size int, seed int64) (*Shuffler, error) {
	v, err := moves.NewValidator(size)
	if err != nil {
		return nil, fmt.Errorf("shuffle: %w", err)
	}
	if seed == 0 {
		seed = defaultSeed
	}

	return &Shuffler{
		validator: v,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Walk applies n random single-step moves to g, never immediately undoing
// the previous move (an undo pair would cancel out and waste entropy).
// Complexity: O(n).
func (s *Shuffler) Walk(g *grid.Grid, n int) {
	var prevEmpty *grid.Position
	for i := 0; i < n; i++ {
		if !s.step(g, &prevEmpty) {
			return
		}
	}
}

// Scramble walks g until h scores it at or above the difficulty's entropy
// threshold, or the attempt limit trips. Returns the number of moves made.
func (s *Shuffler) Scramble(g *grid.Grid, d Difficulty, h heuristic.Heuristic) int {
	target := d.MinEntropy(g.Size())
	var prevEmpty *grid.Position

	made := 0
	for h.Estimate(g) < target && made < scrambleAttemptLimit {
		if !s.step(g, &prevEmpty) {
			break
		}
		made++
	}

	return made
}

// step makes one random non-backtracking move, updating *prevEmpty.
func (s *Shuffler) step(g *grid.Grid, prevEmpty **grid.Position) bool {
	empty := g.Empty()
	candidates := s.validator.ImmediateMoves(empty)
	if *prevEmpty != nil {
		filtered := candidates[:0]
		for _, p := range candidates {
			if p != **prevEmpty {
				filtered = append(filtered, p)
			}
		}
		candidates = filtered
	}
	if len(candidates) == 0 {
		return false
	}

	chosen := candidates[s.rng.Intn(len(candidates))]
	prev := empty
	*prevEmpty = &prev

	return g.Apply(chosen)
}
