// Package entityfinder answers "nearest reachable X" queries: nearest
// reachable object, nearest reachable (melee) NPC, and nearest attackable
// NPC with ranged line-of-sight. It composes a path-cost source and a
// reachability checker through small capability interfaces, wired
// explicitly at construction, which also breaks the construction cycle a
// direct dependency on the coordinator would create.
package entityfinder
