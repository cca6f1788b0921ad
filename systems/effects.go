package systems

import (
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, floating text)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateFloatingText(ecs)
}

// updateFlashEffects decrements flash timers on flashing entities
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateFloatingText advances each rise tween and removes finished numbers
func updateFloatingText(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		if ft.Rise == nil {
			toRemove = append(toRemove, e)
			return
		}
		_, finished := ft.Rise.Update(1.0 / 60.0)
		if finished {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// TriggerDamageFlash starts a red-tinted hit flash on an entity
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = cfg.BossHealth.FlashDuration
	flash.R, flash.G, flash.B = 1.0, 0.4, 0.4
}
