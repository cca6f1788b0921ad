package systems

import (
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateProjectiles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	// Cache stage dimensions outside the loop
	var stageWidth, stageHeight float64
	if stageEntry, ok := components.Stage.First(ecs.World); ok {
		stage := components.Stage.Get(stageEntry)
		stageWidth = stage.Width
		stageHeight = stage.Height
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		// Straight line movement, no gravity
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()

		// Cull off-screen shots (with buffer)
		if stageWidth > 0 {
			if obj.X < -100 || obj.X > stageWidth+100 ||
				obj.Y < -100 || obj.Y > stageHeight+100 {
				toRemove = append(toRemove, e)
				return
			}
		}

		if shouldDestroy := checkProjectileCollisions(ecs, e, obj); shouldDestroy {
			toRemove = append(toRemove, e)
		}
	})

	for _, p := range toRemove {
		destroyProjectile(ecs, p)
	}
}

func checkProjectileCollisions(ecs *ecs.ECS, projEntry *donburi.Entry, obj *components.ObjectData) bool {
	proj := components.Projectile.Get(projEntry)

	if proj.FromBoss {
		return checkBossShotCollisions(ecs, proj, obj)
	}
	return checkPlayerShotCollisions(ecs, proj, obj)
}

func checkBossShotCollisions(ecs *ecs.ECS, proj *components.ProjectileData, obj *components.ObjectData) bool {
	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvPlayer)
	if check == nil {
		return false
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		return true
	}

	if players := check.ObjectsByTags(tags.ResolvPlayer); len(players) > 0 {
		for _, playerObj := range players {
			playerEntry, ok := playerObj.Data.(*donburi.Entry)
			if ok && playerEntry != nil && playerEntry.Valid() {
				handleBossShotPlayerHit(ecs, proj, playerEntry)
			}
		}
		return true
	}

	return false
}

func handleBossShotPlayerHit(ecs *ecs.ECS, proj *components.ProjectileData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 {
		return
	}

	donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
		Amount: proj.Damage,
	})

	TriggerDamageFlash(playerEntry)
	TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
	PlaySFX(ecs, cfg.SoundHit)
}

func checkPlayerShotCollisions(ecs *ecs.ECS, proj *components.ProjectileData, obj *components.ObjectData) bool {
	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvBoss)
	if check == nil {
		return false
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		return true
	}

	if bosses := check.ObjectsByTags(tags.ResolvBoss); len(bosses) > 0 {
		for _, bossObj := range bosses {
			bossEntry, ok := bossObj.Data.(*donburi.Entry)
			if ok && bossEntry != nil && bossEntry.Valid() {
				handlePlayerShotBossHit(ecs, bossEntry)
			}
		}
		return true
	}

	return false
}

// handlePlayerShotBossHit records the hit against the active lyric line.
// Hits never drain health directly; only a scored line does that.
func handlePlayerShotBossHit(ecs *ecs.ECS, bossEntry *donburi.Entry) {
	if bossEntry.HasComponent(components.Death) {
		return
	}

	if trackEntry, ok := components.Track.First(ecs.World); ok {
		td := components.Track.Get(trackEntry)
		td.LineHits++
	}

	TriggerDamageFlash(bossEntry)
	PlaySFX(ecs, cfg.SoundHit)
}

func destroyProjectile(ecs *ecs.ECS, projEntry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(projEntry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(projEntry.Entity())
}
