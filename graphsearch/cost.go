package graphsearch

import (
	"github.com/arveldin/wayfarer/navgraph"
	"github.com/arveldin/wayfarer/navpolicy"
)

// adjustedCost computes the resource-aware cost of traversing e. The
// result is always clamped to at least minAdjustedCost.
func adjustedCost(e *navgraph.Edge, reqs navpolicy.PlayerRequirements, policy navpolicy.ResourcePolicy) int64 {
	base := e.CostTicks
	cost := base

	switch e.Type {
	case navgraph.Agility:
		// Three-retry expectation: failure_rate * base * 3.
		cost = base + int64(e.FailureRate*float64(base)*agilityRetryFactor)

	case navgraph.Toll:
		if e.FreePassageQuest != "" && reqs != nil && reqs.IsQuestCompleted(e.FreePassageQuest) {
			cost = base
		} else if policy != nil {
			cost = policy.AdjustGoldTravel(base, e.TollCost)
		} else {
			cost = base + e.TollCost/10
		}

	case navgraph.TeleportEdge:
		if policy != nil {
			cost = policy.AdjustTeleportCost(base, e.LawRunes())
		}

	case navgraph.TransportEdge:
		// A gold fare on a transport is priced like a toll.
		if e.TollCost > 0 {
			if policy != nil {
				cost = policy.AdjustGoldTravel(base, e.TollCost)
			} else {
				cost = base + e.TollCost/10
			}
		}
		if policy != nil {
			cost += transportBonus(e, policy)
		}
	}

	if cost < minAdjustedCost {
		cost = minAdjustedCost
	}
	return cost
}

// transportBonus reads metadata["transport_kind"] to pick the right
// ResourcePolicy bonus accessor; unknown kinds apply no bonus.
func transportBonus(e *navgraph.Edge, policy navpolicy.ResourcePolicy) int64 {
	kind, _ := e.Metadata["transport_kind"].(string)
	switch kind {
	case "fairy_ring":
		return policy.FairyRingBonus()
	case "spirit_tree":
		return policy.SpiritTreeBonus()
	default:
		return 0
	}
}

// gatedTransportKinds are the transport kinds an account can opt out of.
var gatedTransportKinds = map[string]bool{
	"teleport_spells":     true,
	"charter_ships":       true,
	"magic_carpets":       true,
	"grapple_shortcuts":   true,
	"wilderness_obelisks": true,
	"canoes":              true,
}

// policyPermits reports whether policy allows traversing e at all. Edges
// with no gated transport kind are always permitted.
func policyPermits(e *navgraph.Edge, policy navpolicy.ResourcePolicy) bool {
	if policy == nil {
		return true
	}
	kind, _ := e.Metadata["transport_kind"].(string)
	if gatedTransportKinds[kind] && !policy.ShouldUse(kind) {
		return false
	}
	return true
}

// isWilderness reports whether n is tagged wilderness.
func isWilderness(n *navgraph.Node) bool {
	for _, tag := range n.Tags {
		if tag == "wilderness" {
			return true
		}
	}
	return false
}
