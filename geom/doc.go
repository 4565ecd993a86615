// Package geom defines the fundamental spatial primitives shared by every
// layer of the navigation stack: tiles, planes, collision flags, and the
// Chebyshev-distance helpers that the local pathfinder, the reachability
// checker, and the global graph all build on.
//
// Everything here is a plain value type. There is no locking and no I/O;
// packages higher up the stack (collision, tilepath, reach, navgraph) import
// geom and add behavior on top.
package geom
