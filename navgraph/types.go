package navgraph

import (
	"errors"

	"github.com/arveldin/wayfarer/navpolicy"
)

// AnyOrigin is the reserved virtual node id representing "usable from
// anywhere"; it carries no coordinates and is the source of every
// FreeTeleport edge.
const AnyOrigin = "ANY_ORIGIN"

// NodeType classifies a Node for candidate search (FindPathToNearestType)
// and for overlay/transport bookkeeping.
type NodeType int

const (
	Generic NodeType = iota
	Bank
	Altar
	Anvil
	Teleport
	Transport
)

// Node is a point of interest in the navigation graph.
type Node struct {
	ID       string
	X, Y, Z  int32
	Type     NodeType
	Tags     []string
	Metadata map[string]any
}

// EdgeType enumerates the kinds of traversal a graph edge represents.
type EdgeType int

const (
	Walk EdgeType = iota
	Stairs
	Agility
	Toll
	Door
	TeleportEdge
	TransportEdge
	FreeTeleport
)

// Edge connects two nodes. Invariants (enforced by Builder):
//   - Stairs requires FromPlane != ToPlane.
//   - Agility requires AgilityLevel > 0 and 0 <= FailureRate <= 1.
//   - FreeTeleport requires From == AnyOrigin.
type Edge struct {
	From, To      string
	Type          EdgeType
	CostTicks     int64
	Bidirectional bool
	Requirements  []navpolicy.Requirement
	Metadata      map[string]any

	FromPlane, ToPlane int32
	ObjectID           string
	Action             string

	AgilityLevel int
	FailureRate  float64

	TollCost         int64
	FreePassageQuest string
}

// LawRunes reads Metadata["law_runes"] for TeleportEdge cost adjustment;
// absent or wrong-typed metadata reads as 0.
func (e *Edge) LawRunes() int {
	v, ok := e.Metadata["law_runes"]
	if !ok {
		return 0
	}
	n, ok := v.(int)
	if !ok {
		return 0
	}
	return n
}

// ErrNoBankNodes is Builder.Build's fatal configuration failure; the
// graph must never be partially built.
var ErrNoBankNodes = errors.New("navgraph: graph has no Bank-type nodes")
