// Package coordinator implements the NavigationCoordinator: a tiered,
// non-blocking cost query over a local tile pathfinder, a path-cost cache,
// and an async global graph search.
//
// At most one graph search is ever in flight. A request for a different
// (from,to) pair while one is outstanding is dropped rather than queued —
// callers are expected to re-ask on a later tick.
package coordinator
