package factory

import (
	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space sized to the stage.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(int(width), int(height), 16, 16)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}
