package systems

import (
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateInput returns the input singleton, creating it on first use so
// scenes never have to spawn it explicitly.
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.Create(cfg.Default, components.Input))
	}
	return components.Input.Get(entry)
}

// UpdateInput polls the keyboard once per frame and rolls the pressed-state
// buffers. Run it before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current

	for action, binding := range cfg.Input.Bindings {
		pressed := false
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed = true
				break
			}
		}
		input.Current[action] = pressed
	}
}

// GetAction returns the temporal state of one action this frame.
func GetAction(ecs *ecs.ECS, action cfg.ActionID) components.ActionState {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return components.ActionState{}
	}
	input := components.Input.Get(entry)
	return components.ActionState{
		Pressed:      input.Current[action],
		JustPressed:  input.Current[action] && !input.Previous[action],
		JustReleased: !input.Current[action] && input.Previous[action],
	}
}
