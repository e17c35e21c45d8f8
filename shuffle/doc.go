// Package shuffle produces solvable scrambles for the search engines and
// their callers.
//
// Solvability is guaranteed by construction rather than by parity
// arithmetic: a Shuffler only ever applies legal single-step moves to a
// solved board, so the reverse move sequence is always a solution. Walks
// never immediately undo their previous step.
//
// Two scrambling modes:
//
//   - Walk(g, n): exactly n random moves;
//   - Scramble(g, difficulty, h): keep walking until the supplied
//     heuristic scores the board above the difficulty threshold
//     (Easy/Medium/Hard scale with N²), bounded by an attempt limit.
//
// All randomness is seeded explicitly; the same seed reproduces the same
// scramble, which the test suites rely on.
package shuffle
