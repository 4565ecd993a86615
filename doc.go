// Package wayfarer is a two-tier spatial pathfinding and reachability
// engine for a tile-based virtual world.
//
// 🚀 What is wayfarer?
//
//	A navigation stack that answers "how do I get there, and can I even
//	interact with it once I arrive":
//
//	  • Local tier: A* over a dense collision grid with directional and
//	    corner-blocking semantics
//	  • Global tier: Dijkstra over a typed navigation graph (walks, stairs,
//	    shortcuts, tolls, teleports, transports) with resource-aware costs
//	  • Reachability: multi-tile footprints, interaction adjacency, and
//	    ranged line-of-sight
//
// ✨ Why wayfarer?
//
//   - Non-blocking       — cost queries never wait on a graph search; one
//     async slot, poll on the next tick
//   - Resource-aware     — tolls, rune costs, and account restrictions
//     reshape edge weights per query
//   - Snapshot-safe      — collision map and graph are immutable once
//     built; swap a new snapshot atomically
//
// Under the hood, one directory per concern:
//
//	geom/          — tiles, planes, collision flags, Chebyshev helpers
//	collision/     — the read-only collision oracle (step rules, LOS)
//	tilepath/      — local A* with octile weights and a bounded frontier
//	reach/         — footprints, interaction adjacency, attack positions
//	navgraph/      — graph model + the ordered build pipeline
//	graphsearch/   — requirement-filtered, cost-adjusted Dijkstra
//	pathcache/     — bounded LRU of path costs with movement staleness
//	coordinator/   — the tiered, non-blocking cost dispatcher
//	entityfinder/  — "nearest reachable X" over scene entities
//	trainingspot/  — spot ranking with a persistent 7-day cache
//	obstacle/      — door/gate detection between adjacent tiles
//	navpolicy/     — the interfaces the engine consumes, never implements
//
// wayfarer is a library: it selects and costs routes but never clicks,
// teleports, or spends anything itself.
//
//	go get github.com/arveldin/wayfarer
package wayfarer
