// Package obstacle detects blocking boundary objects (doors, gates) between
// two adjacent tiles and describes the interaction that would clear them.
// The descriptor is returned to the surrounding runtime; this package never
// performs the interaction itself.
package obstacle
