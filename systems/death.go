package systems

import (
	"github.com/automoto/lyricfire/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths plays out active defeat sequences. The entity stays in the
// world while its timer runs so the renderer can flicker it; the timer
// stopping at zero marks the sequence done.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer--
		}
	})
}

// BossDefeatDone reports whether the boss defeat sequence has fully played
// out. False while the boss is alive or still exploding.
func BossDefeatDone(ecs *ecs.ECS) bool {
	entry, ok := components.BossHealth.First(ecs.World)
	if !ok {
		return false
	}
	if !components.BossHealth.Get(entry).Defeated {
		return false
	}

	done := true
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if components.Death.Get(e).Timer > 0 {
			done = false
		}
	})
	return done
}
