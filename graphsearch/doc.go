// Package graphsearch implements Dijkstra's algorithm over a navgraph.Graph
// with resource-aware edge-cost adjustment and requirement filtering, plus
// NavigationAnalysis, a diagnostic classification of why a path could not
// be found.
package graphsearch
