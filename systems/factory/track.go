package factory

import (
	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrackClock spawns the song clock singleton. The track itself is
// bound later, when the player picks one.
func CreateTrackClock(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Track.Spawn(ecs)
	components.Track.SetValue(entry, components.TrackData{})
	return entry
}

// CreateFireControl spawns the fire-origin/height-gate singleton. It lives
// apart from the boss entity so the cached origin survives the boss's
// defeat and removal.
func CreateFireControl(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.FireControl.Spawn(ecs)
	components.FireControl.SetValue(entry, components.FireControlData{})
	return entry
}
