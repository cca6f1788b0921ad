package factory

import (
	"image/color"

	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingText spawns a rising damage number at a world position.
func CreateFloatingText(ecs *ecs.ECS, x, y float64, str string, c color.RGBA) *donburi.Entry {
	entry := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.SetValue(entry, components.FloatingTextData{
		Text:  str,
		X:     x,
		Y:     y,
		Rise:  gween.New(0, float32(cfg.FloatingText.RiseDistance), cfg.FloatingText.Duration, ease.OutQuad),
		Color: c,
	})
	return entry
}
