package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to the player for one frame when a boss shot
// connects; the player system consumes it.
type DamageEventData struct {
	Amount int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
