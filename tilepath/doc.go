// Package tilepath implements the local tile-grid pathfinder: an A* search
// over the 8-neighborhood of a collision.Oracle, with diagonal/corner rules
// delegated to the oracle, octile-distance weights (cardinal=10, diagonal=14),
// a bounded iteration count, and a single-slot exact-match result cache.
//
// Complexity: O(b^d) worst case bounded by MaxIterations expansions; in
// practice close to O(E log V) over the expanded frontier thanks to the
// admissible octile heuristic.
package tilepath
