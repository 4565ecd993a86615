package navpolicy

import "github.com/arveldin/wayfarer/geom"

// TeleportItemTier enumerates how strongly an account can rely on
// teleport-item shortcuts.
type TeleportItemTier int

const (
	TeleportItemNone TeleportItemTier = iota
	TeleportItemInventory
	TeleportItemInventoryPerm
)

// ResourcePolicy is consumed by graphsearch to adjust edge costs according
// to account-type and wealth signals. Implementations live outside this
// module (account tier, GE pricing, etc.); the core only ever reads them.
type ResourcePolicy interface {
	ShouldAvoidWilderness() bool
	// ShouldUse reports whether the account is willing to use a transport
	// kind: "teleport_spells", "charter_ships", "magic_carpets",
	// "grapple_shortcuts", "wilderness_obelisks", "canoes".
	ShouldUse(kind string) bool
	TeleportItemsTier() TeleportItemTier
	AdjustTeleportCost(baseTicks int64, lawRunes int) int64
	AdjustGoldTravel(baseTicks, gp int64) int64
	// FairyRingBonus and SpiritTreeBonus may be negative (an incentive).
	FairyRingBonus() int64
	SpiritTreeBonus() int64
}

// PlayerRequirements is consumed by navgraph (TraversableEdges filtering)
// and graphsearch (per-edge admissibility and toll quest checks).
type PlayerRequirements interface {
	MagicLevel() int
	AgilityLevel() int
	CombatLevel() int
	SkillLevel(name string) int
	InventoryGold() int64
	TotalGold() int64
	HasItem(id string, qty int) bool
	IsQuestCompleted(name string) bool
	IsIronman() bool
	IsHardcore() bool
	IsUltimate() bool
	AcceptableRiskThreshold() float64
	// CanTraverseEdge conjuncts every Requirement attached to edge; it is
	// the single predicate graphsearch calls per relaxation.
	CanTraverseEdge(reqs []Requirement) bool
}

// NPC is the minimal shape entityfinder needs from a scene entity.
type NPC struct {
	ID       string
	Name     string
	Position geom.Tile
}

// ClientScene is the read-only scene surface the core consumes; the actual
// client runtime, input synthesis, and tick scheduling live outside this
// module.
type ClientScene interface {
	NPCs() []NPC
	Tile(x, y, z int32) (geom.Tile, bool)
	SceneSize() (width, height int32)
	CollisionFlags(plane int32) [][]geom.CollisionFlag
}
