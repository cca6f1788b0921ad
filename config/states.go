package config

// StateID identifies an animation/behavior state for stateful entities.
type StateID uint8

const (
	StateNone StateID = iota

	Idle
	Walk
	Crouch
	Shoot
	Hit
	Die
)

// StateName maps state IDs to readable names for debug output.
var StateName = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Crouch:    "crouch",
	Shoot:     "shoot",
	Hit:       "hit",
	Die:       "die",
}
