package components

import "github.com/yohamta/donburi"

// DeathData marks an entity playing out its death/defeat sequence.
// Timer counts down each frame; at 0 the owning scene reacts (victory
// screen for the boss, game over for the player).
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
