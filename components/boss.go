package components

import (
	"github.com/yohamta/donburi"
)

// BossData holds the boss locomotion and pose sub-state. Chances are copied
// from config at spawn so an encounter (or a test) can pin them without
// touching globals.
type BossData struct {
	Direction Vector

	// Pacing
	MoveSpeed float64
	MinX      float64 // Left pacing boundary
	MaxX      float64 // Right pacing boundary
	StandingY float64 // Y the boss is pinned to while not crouching

	// Random pause
	PauseChance   float64
	PauseDuration int
	PauseTimer    int // frames remaining
	IsPaused      bool

	// Random direction flip
	ChangeDirectionChance float64

	// Crouch sub-state
	CrouchChance   float64
	CrouchDuration int
	CrouchTimer    int // frames remaining
	IsCrouching    bool
}

var Boss = donburi.NewComponentType[BossData]()
