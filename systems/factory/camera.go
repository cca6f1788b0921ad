package factory

import (
	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centered on the screen.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{
			X: float64(cfg.C.Width) / 2,
			Y: float64(cfg.C.Height) / 2,
		},
	})
	return camera
}
