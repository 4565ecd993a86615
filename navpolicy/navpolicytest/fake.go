// Package navpolicytest provides simple, fully-controllable fakes for the
// navpolicy interfaces. It is an importable package rather than per-package
// test helpers because navpolicy's consumers span most of the module.
package navpolicytest

import (
	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/navpolicy"
)

// FakeScene is a fully in-memory navpolicy.ClientScene.
type FakeScene struct {
	npcs   []navpolicy.NPC
	width  int32
	height int32
	planes [][][]geom.CollisionFlag
}

// NewFakeScene builds an empty scene of the given dimensions with one plane.
func NewFakeScene(width, height int32) *FakeScene {
	plane := make([][]geom.CollisionFlag, height)
	for y := range plane {
		plane[y] = make([]geom.CollisionFlag, width)
	}
	return &FakeScene{width: width, height: height, planes: [][][]geom.CollisionFlag{plane}}
}

// AddNPC registers an NPC in the scene.
func (s *FakeScene) AddNPC(id, name string, pos geom.Tile) {
	s.npcs = append(s.npcs, navpolicy.NPC{ID: id, Name: name, Position: pos})
}

// Block sets FlagFullBlock at (x,y) on plane 0.
func (s *FakeScene) Block(x, y int32) {
	s.planes[0][y][x] = geom.FlagFullBlock
}

// NPCs implements navpolicy.ClientScene.
func (s *FakeScene) NPCs() []navpolicy.NPC { return s.npcs }

// Tile implements navpolicy.ClientScene.
func (s *FakeScene) Tile(x, y, z int32) (geom.Tile, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height || int(z) >= len(s.planes) {
		return geom.Tile{}, false
	}
	return geom.Tile{X: x, Y: y, Z: z}, true
}

// SceneSize implements navpolicy.ClientScene.
func (s *FakeScene) SceneSize() (int32, int32) { return s.width, s.height }

// CollisionFlags implements navpolicy.ClientScene.
func (s *FakeScene) CollisionFlags(plane int32) [][]geom.CollisionFlag {
	if int(plane) >= len(s.planes) {
		return nil
	}
	return s.planes[plane]
}

// FakePlayerRequirements is a fully-controllable navpolicy.PlayerRequirements.
type FakePlayerRequirements struct {
	Magic, Agility, Combat int
	Skills                 map[string]int
	Gold, Bank             int64
	Items                  map[string]int
	CompletedQuests        map[string]bool
	Ironman, Hardcore, Ult bool
	RiskThreshold          float64
}

// NewFakePlayerRequirements returns a permissive default: no skills, no gold.
func NewFakePlayerRequirements() *FakePlayerRequirements {
	return &FakePlayerRequirements{
		Skills:          map[string]int{},
		Items:           map[string]int{},
		CompletedQuests: map[string]bool{},
	}
}

func (f *FakePlayerRequirements) MagicLevel() int   { return f.Magic }
func (f *FakePlayerRequirements) AgilityLevel() int { return f.Agility }
func (f *FakePlayerRequirements) CombatLevel() int  { return f.Combat }
func (f *FakePlayerRequirements) SkillLevel(name string) int {
	return f.Skills[name]
}
func (f *FakePlayerRequirements) InventoryGold() int64 { return f.Gold }
func (f *FakePlayerRequirements) TotalGold() int64     { return f.Gold + f.Bank }
func (f *FakePlayerRequirements) HasItem(id string, qty int) bool {
	return f.Items[id] >= qty
}
func (f *FakePlayerRequirements) IsQuestCompleted(name string) bool {
	return f.CompletedQuests[name]
}
func (f *FakePlayerRequirements) IsIronman() bool             { return f.Ironman }
func (f *FakePlayerRequirements) IsHardcore() bool            { return f.Hardcore }
func (f *FakePlayerRequirements) IsUltimate() bool            { return f.Ult }
func (f *FakePlayerRequirements) AcceptableRiskThreshold() float64 { return f.RiskThreshold }
func (f *FakePlayerRequirements) CanTraverseEdge(reqs []navpolicy.Requirement) bool {
	return navpolicy.AllSatisfied(reqs, f)
}

// FakeResourcePolicy is a fully-controllable navpolicy.ResourcePolicy.
type FakeResourcePolicy struct {
	AvoidWilderness bool
	Allowed         map[string]bool
	Tier            navpolicy.TeleportItemTier
	TeleportAdjust  func(base int64, lawRunes int) int64
	GoldAdjust      func(base, gp int64) int64
	FairyBonus      int64
	SpiritBonus     int64
}

// NewFakeResourcePolicy returns a policy with identity cost adjustments.
func NewFakeResourcePolicy() *FakeResourcePolicy {
	return &FakeResourcePolicy{
		Allowed:        map[string]bool{},
		TeleportAdjust: func(base int64, _ int) int64 { return base },
		GoldAdjust:     func(base, _ int64) int64 { return base },
	}
}

func (f *FakeResourcePolicy) ShouldAvoidWilderness() bool { return f.AvoidWilderness }
func (f *FakeResourcePolicy) ShouldUse(kind string) bool  { return f.Allowed[kind] }
func (f *FakeResourcePolicy) TeleportItemsTier() navpolicy.TeleportItemTier { return f.Tier }
func (f *FakeResourcePolicy) AdjustTeleportCost(base int64, lawRunes int) int64 {
	return f.TeleportAdjust(base, lawRunes)
}
func (f *FakeResourcePolicy) AdjustGoldTravel(base, gp int64) int64 {
	return f.GoldAdjust(base, gp)
}
func (f *FakeResourcePolicy) FairyRingBonus() int64  { return f.FairyBonus }
func (f *FakeResourcePolicy) SpiritTreeBonus() int64 { return f.SpiritBonus }
