package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	InvulnFrames int // Invincibility frames after being hit
	ShotCooldown int // Frames until the next shot may be fired
}

var Player = donburi.NewComponentType[PlayerData]()
