// Package collision exposes read-only facts about the world's tile grid:
// whether a tile is blocked, whether an agent can step from one tile to an
// adjacent one, and whether two tiles have line of sight.
//
// An Oracle is built once over a snapshot of collision flags (one dense
// grid per plane) and treated as immutable for its lifetime — callers that
// need a fresh map build a new Oracle and swap it in atomically; Oracle
// itself never mutates.
//
// All queries are pure functions with a safe-by-default failure mode:
// invalid input (nil receiver, out-of-range plane, non-adjacent arguments to
// CanStep) returns the conservative answer (blocked / no line of sight)
// rather than panicking.
package collision
