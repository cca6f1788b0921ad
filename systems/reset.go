package systems

import (
	"github.com/automoto/lyricfire/components"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResetEncounter restores every combat subsystem for a fresh round on the
// currently bound track: boss pose, fire gate, health pool, song clock and
// any shots still in flight.
func ResetEncounter(e *ecs.ECS) {
	var bossSpawnX, playerSpawnX float64
	if stageEntry, ok := components.Stage.First(e.World); ok {
		stage := components.Stage.Get(stageEntry)
		bossSpawnX = stage.BossSpawnX
		playerSpawnX = stage.PlayerSpawnX
	}

	ResetBoss(e, bossSpawnX)
	ResetFireControl(e)
	ResetBossHealth(e)
	ResetPlayer(e, playerSpawnX)
	ResetTrack(e)
	ResetHUD()

	clearProjectiles(e)
}

func clearProjectiles(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		destroyProjectile(e, entry)
	}
}
