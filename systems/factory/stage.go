package factory

import (
	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/assets"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage loads the encounter map and spawns the stage entity plus the
// solid geometry shots collide with.
func CreateStage(ecs *ecs.ECS) *donburi.Entry {
	layout := assets.LoadStage(cfg.Stage.MapPath)

	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{
		Map:          layout.Map,
		Width:        layout.Width,
		Height:       layout.Height,
		FloorY:       layout.FloorY,
		CatwalkY:     layout.CatwalkY,
		MinX:         layout.MinX,
		MaxX:         layout.MaxX,
		PlayerSpawnX: layout.PlayerSpawnX,
		BossSpawnX:   layout.BossSpawnX,
	})

	// Floor and side walls bound the play field and soak up stray shots.
	createWall(ecs, 0, layout.FloorY, layout.Width, layout.Height-layout.FloorY)
	createWall(ecs, -32, 0, 32, layout.Height)
	createWall(ecs, layout.Width, 0, 32, layout.Height)

	return stage
}

func createWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return wall
}
