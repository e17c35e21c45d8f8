// Package astar defines the configuration surface and result types for
// the A* engine; the search itself lives in astar.go.
package astar

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/heuristic"
	"github.com/katalvlaran/tilath/pattern"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that WithHeuristic was given nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrExhausted indicates the open set emptied without reaching the
	// goal: the board is unsolvable under the single-step move set.
	ErrExhausted = errors.New("astar: open set exhausted, board unsolvable")

	// ErrIterationLimit indicates the iteration ceiling tripped before a
	// solution was found. Not proof of unsolvability.
	ErrIterationLimit = errors.New("astar: iteration limit exceeded")

	// ErrCancelled indicates the caller's context was cancelled while the
	// search was running.
	ErrCancelled = errors.New("astar: search cancelled")
)

// DefaultMaxIterations is generous enough to finish every solvable 4×4
// board with the default heuristic; callers tune it for larger sizes.
const DefaultMaxIterations = 2_000_000

// cancelCheckInterval is how many pops go between context checks.
// Checking every pop would put a channel poll on the hot path.
const cancelCheckInterval = 1000

// Options configures a single Solve call.
//
// Heuristic     – estimator used to score nodes. An inadmissible choice
// (heuristic.Enhanced, heuristic.EmptyCellPath) trades the optimality
// guarantee for speed; that trade is the caller's, never made silently.
// MaxIterations – hard cap on heap pops before giving up.
// Patterns      – optional macro-move table; matched patterns become
// single search edges of weight = pattern length. Nil disables.
// Ctx           – cooperative cancellation, polled every
// cancelCheckInterval pops.
type Options struct {
	Heuristic     heuristic.Heuristic
	MaxIterations int
	Patterns      *pattern.HashTable
	Ctx           context.Context
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithHeuristic selects the estimator. Panics on nil to fail loudly at
// configuration time rather than deep inside the search.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithMaxIterations overrides the iteration ceiling. Values below 1 are
// ignored in favor of the default.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxIterations = n
		}
	}
}

// WithPatterns enables macro-move acceleration backed by the given
// table. Acceleration changes how fast solutions are found, never which
// lengths are optimal.
func WithPatterns(t *pattern.HashTable) Option {
	return func(o *Options) {
		o.Patterns = t
	}
}

// WithContext attaches a cancellation context to the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns the baseline configuration: linear-conflict
// heuristic (admissible, so results are optimal), the default iteration
// ceiling, no pattern acceleration, background context.
func DefaultOptions() Options {
	return Options{
		Heuristic:     heuristic.LinearConflict{},
		MaxIterations: DefaultMaxIterations,
		Patterns:      nil,
		Ctx:           context.Background(),
	}
}

// Result carries a finished search: the ordered tile positions to push,
// plus counters for callers that report progress or benchmark.
type Result struct {
	// Moves is the solution, one entry per single-step move. Empty for a
	// board that is already solved.
	Moves []grid.Position

	// Expanded is the number of nodes popped from the open set.
	Expanded int

	// Elapsed is wall-clock search time.
	Elapsed time.Duration
}

// Len returns the solution length in single-step moves.
func (r Result) Len() int { return len(r.Moves) }
