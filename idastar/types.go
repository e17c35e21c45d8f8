// Package idastar defines the configuration surface and result types for
// the iterative-deepening engine; the search itself lives in idastar.go.
package idastar

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/tilath/grid"
	"github.com/katalvlaran/tilath/heuristic"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("idastar: grid is nil")

	// ErrNilHeuristic indicates that WithHeuristic was given nil.
	ErrNilHeuristic = errors.New("idastar: heuristic is nil")

	// ErrExhausted indicates every branch was pruned with nothing deeper
	// to explore: the board is unsolvable under the single-step move set.
	ErrExhausted = errors.New("idastar: search space exhausted, board unsolvable")

	// ErrNodeLimit indicates the node budget tripped before a solution
	// was found. Not proof of unsolvability.
	ErrNodeLimit = errors.New("idastar: node limit exceeded")

	// ErrCancelled indicates the caller's context was cancelled while the
	// search was running.
	ErrCancelled = errors.New("idastar: search cancelled")
)

// DefaultMaxNodes bounds total recursive visits across all deepening
// rounds. Deepening revisits shallow nodes every round, so the budget
// runs higher than an equivalent A* iteration ceiling.
const DefaultMaxNodes = 5_000_000

// cancelCheckInterval is how many node visits go between context checks.
const cancelCheckInterval = 1000

// Options configures a single Solve call.
//
// Heuristic – estimator used for f = g + h pruning. Optimality of the
// returned path requires an admissible choice.
// MaxNodes  – hard cap on recursive visits, summed over all thresholds.
// Ctx       – cooperative cancellation, threaded through the recursion
// and polled every cancelCheckInterval visits.
type Options struct {
	Heuristic heuristic.Heuristic
	MaxNodes  int
	Ctx       context.Context
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithHeuristic selects the estimator. Panics on nil to fail loudly at
// configuration time rather than deep inside the recursion.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithMaxNodes overrides the node budget. Values below 1 are ignored in
// favor of the default.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxNodes = n
		}
	}
}

// WithContext attaches a cancellation context to the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns the baseline configuration: linear-conflict
// heuristic, the default node budget, background context.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.LinearConflict{},
		MaxNodes:  DefaultMaxNodes,
		Ctx:       context.Background(),
	}
}

// Result carries a finished search: the ordered tile positions to push,
// plus counters for callers that report progress or benchmark.
type Result struct {
	// Moves is the solution, one entry per single-step move. Empty for a
	// board that is already solved.
	Moves []grid.Position

	// Visited counts recursive node visits across all deepening rounds;
	// diagnostics only.
	Visited int

	// Elapsed is wall-clock search time.
	Elapsed time.Duration
}

// Len returns the solution length in single-step moves.
func (r Result) Len() int { return len(r.Moves) }
