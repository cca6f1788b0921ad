package factory

import (
	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player on the floor at the given center X.
func CreatePlayer(ecs *ecs.ECS, centerX float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	floorY := cfg.Stage.FloorY
	if stageEntry, ok := components.Stage.First(ecs.World); ok {
		floorY = components.Stage.Get(stageEntry).FloorY
	}

	obj := resolv.NewObject(
		centerX-cfg.Player.Width/2,
		floorY-cfg.Player.Height,
		cfg.Player.Width,
		cfg.Player.Height,
		tags.ResolvPlayer,
	)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight, Y: 0},
	})

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})

	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return player
}
