// Package navgraph holds the global navigation graph: nodes, typed edges,
// and the Builder that assembles them from base data, region overlays, and
// plane-transition registries into a single immutable Graph snapshot.
//
// A Graph is built once and treated as read-only afterward:
// later components (graphsearch) read it concurrently with no further
// writes. Builder.Build is the only place new nodes or edges are created.
package navgraph
