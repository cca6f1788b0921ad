package factory

import (
	"math"

	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBossShot spawns a boss projectile at the given origin, aimed at the
// player's current position. High shots travel at full speed; low shots a
// little flatter and slower.
func CreateBossShot(ecs *ecs.ECS, originX, originY float64, high bool) *donburi.Entry {
	speed := cfg.Fire.ShotSpeed * cfg.Fire.HighShotSpeedScale
	if !high {
		speed = cfg.Fire.ShotSpeed * cfg.Fire.LowShotSpeedScale
	}

	// Aim at the player; straight down if there is none.
	dx, dy := 0.0, 1.0
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		if obj := components.Object.Get(playerEntry); obj != nil && obj.Object != nil {
			dx = (obj.X + obj.W/2) - originX
			dy = (obj.Y + obj.H/2) - originY
			length := math.Sqrt(dx*dx + dy*dy)
			if length > 0 {
				dx /= length
				dy /= length
			}
		}
	}

	var bossEntry *donburi.Entry
	if b, ok := tags.Boss.First(ecs.World); ok {
		bossEntry = b
	}

	return createShot(ecs, shotSpec{
		x:        originX,
		y:        originY,
		w:        cfg.Fire.ShotWidth,
		h:        cfg.Fire.ShotHeight,
		speedX:   speed * dx,
		speedY:   speed * dy,
		owner:    bossEntry,
		damage:   cfg.Fire.ShotDamage,
		fromBoss: true,
		high:     high,
	})
}

// CreatePlayerShot spawns a player projectile with an explicit velocity.
func CreatePlayerShot(ecs *ecs.ECS, x, y, speedX, speedY float64) *donburi.Entry {
	var playerEntry *donburi.Entry
	if p, ok := tags.Player.First(ecs.World); ok {
		playerEntry = p
	}

	return createShot(ecs, shotSpec{
		x:      x,
		y:      y,
		w:      cfg.Player.ShotWidth,
		h:      cfg.Player.ShotHeight,
		speedX: speedX,
		speedY: speedY,
		owner:  playerEntry,
		damage: cfg.Player.ShotDamage,
	})
}

type shotSpec struct {
	x, y, w, h     float64
	speedX, speedY float64
	owner          *donburi.Entry
	damage         int
	fromBoss       bool
	high           bool
}

func createShot(ecs *ecs.ECS, spec shotSpec) *donburi.Entry {
	shot := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(spec.x-spec.w/2, spec.y-spec.h/2, spec.w, spec.h, tags.ResolvProjectile)
	obj.Data = shot
	components.Object.SetValue(shot, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Physics.SetValue(shot, components.PhysicsData{
		SpeedX: spec.speedX,
		SpeedY: spec.speedY,
	})

	components.Projectile.SetValue(shot, components.ProjectileData{
		Owner:    spec.owner,
		Damage:   spec.damage,
		FromBoss: spec.fromBoss,
		High:     spec.high,
	})

	return shot
}
