// Package tilath is your in-memory toolkit for modeling, scrambling,
// and optimally solving N×N sliding-tile puzzles – from board
// primitives to heuristic search engines with macro-move acceleration.
//
// 🚀 What is tilath?
//
//	A focused, allocation-conscious library that brings together:
//		• Board primitives: grids 3×3 through 15×15, single moves & chain slides
//		• Move topology: immediate-move enumeration, legality, chain resolution
//		• Heuristics: admissible Manhattan and Linear Conflict, plus
//		  three documented inadmissible fast modes
//		• Pattern acceleration: local motifs matched via an 8-symmetry
//		  hash table and folded into the search as macro-moves
//		• Engines: A* (arena-backed, optimal) and IDA* (O(depth) memory)
//		• Scrambling: seeded, solvable-by-construction walks with
//		  entropy-targeted difficulty levels
//
// ✨ Why choose tilath?
//
//   - Optimality you can check – two independent engines cross-validate
//   - Rock-solid error discipline – sentinel errors, no panics, no logging
//   - Interruptible – cooperative context cancellation inside both engines
//   - Deterministic – every random walk is seeded and reproducible
//
// Everything is organized under seven subpackages:
//
//	grid/      – Grid, Position, Tile: state, moves, fingerprints
//	moves/     – Validator: adjacency, legality, chain decomposition
//	heuristic/ – the five estimators behind f = g + h
//	pattern/   – macro-move catalogs: absolute, relative, hash-indexed
//	astar/     – the A* engine with optional pattern acceleration
//	idastar/   – the iterative-deepening engine
//	shuffle/   – seeded scrambles that are always solvable
//
// Start with grid.New, scramble with shuffle, then hand the board to
// astar.Solve or idastar.Solve.
package tilath
