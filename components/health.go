package components

import "github.com/yohamta/donburi"

// HealthData is the player's small hit pool.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// BossHealthData tracks the boss pool drained by scored lyric lines.
// Current never increases outside Reset; Defeated never reverts without
// Reset. Current hits exactly 0 on the final expected line because the last
// line's damage is forced up to the remaining health.
type BossHealthData struct {
	Current        float64
	Max            float64
	TotalDamage    float64 // monotonic accumulator across the encounter
	LinesCompleted int
	ExpectedLines  int
	Defeated       bool
}

var BossHealth = donburi.NewComponentType[BossHealthData]()
