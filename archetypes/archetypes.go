package archetypes

import (
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.State,
		components.Flash,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Rig,
		components.Object,
		components.BossHealth,
		components.State,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Track = newArchetype(
		components.Track,
	)
	FireControl = newArchetype(
		components.FireControl,
	)
	FloatingText = newArchetype(
		components.FloatingText,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
