package entityfinder

import (
	"context"

	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/navpolicy"
)

// sceneNPCs converts the scene's NPC view into finder candidates.
func sceneNPCs(scene navpolicy.ClientScene) []NPCEntity {
	npcs := scene.NPCs()
	out := make([]NPCEntity, 0, len(npcs))
	for _, n := range npcs {
		out = append(out, NPCEntity{ID: n.ID, Name: n.Name, Position: n.Position})
	}
	return out
}

// NearestReachableNPCInScene runs NearestReachableNPC over the live NPC
// list of scene.
func (f *Finder) NearestReachableNPCInScene(ctx context.Context, player geom.Tile, scene navpolicy.ClientScene, ids []string, name string, radius int32) (NPCResult, bool) {
	return f.NearestReachableNPC(ctx, player, sceneNPCs(scene), ids, name, radius)
}

// NearestAttackableNPCInScene runs NearestAttackableNPC over the live NPC
// list of scene.
func (f *Finder) NearestAttackableNPCInScene(ctx context.Context, player geom.Tile, scene navpolicy.ClientScene, ids []string, name string, radius, weaponRange int32) (NPCResult, bool) {
	return f.NearestAttackableNPC(ctx, player, sceneNPCs(scene), ids, name, radius, weaponRange)
}
