// Package reach answers interaction-adjacency questions: whether an agent
// can physically interact with a multi-tile object or a 1x1 entity, and
// where to stand for a ranged attack with line-of-sight.
package reach
