package systems

import (
	"log"
	"math"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/automoto/lyricfire/tracks"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LineResult reports what one scored line did to the boss. The
// presentation layer uses it to spawn damage numbers and cues; the core
// never depends on those side effects running.
type LineResult struct {
	Line      string
	Damage    float64
	Remaining float64
	FinalLine bool
	Defeated  bool
}

// HealthSnapshot is the read-only view of the boss pool for HUD/UI.
type HealthSnapshot struct {
	Current        float64
	Max            float64
	Percent        float64
	TotalDamage    float64
	LinesCompleted int
	ExpectedLines  int
	Defeated       bool
}

// ApplyLineDamage scores one lyric line against the boss. Unsuccessful
// lines and lines after defeat change nothing. Each successful line deals
// round(max/expected); the line that reaches the expected total deals at
// least the remaining health, so the pool hits exactly zero on the final
// line no matter how the earlier rounding drifted.
func ApplyLineDamage(ecs *ecs.ECS, lineText string, successful bool) LineResult {
	entry, ok := components.BossHealth.First(ecs.World)
	if !ok {
		return LineResult{}
	}
	hp := components.BossHealth.Get(entry)

	if hp.Defeated || !successful {
		return LineResult{Line: lineText, Remaining: hp.Current}
	}

	hp.LinesCompleted++

	expected := hp.ExpectedLines
	if expected <= 0 {
		expected = cfg.BossHealth.DefaultLines
	}
	damage := math.Round(hp.Max / float64(expected))
	final := hp.LinesCompleted >= expected
	if final && hp.Current > damage {
		// Force exact depletion on the last scored line.
		damage = hp.Current
	}

	hp.Current -= damage
	if hp.Current < 0 {
		hp.Current = 0
	}
	hp.TotalDamage += damage

	result := LineResult{
		Line:      lineText,
		Damage:    damage,
		Remaining: hp.Current,
		FinalLine: final,
	}

	if hp.Current == 0 && !hp.Defeated {
		hp.Defeated = true
		result.Defeated = true
		triggerDefeat(ecs)
	}

	return result
}

// SetCurrentTrack binds a loaded track to the encounter: the song clock
// restarts and the expected line count is recomputed from the track's
// non-empty lyric lines. Health is left alone; malformed input is logged
// and ignored.
func SetCurrentTrack(ecs *ecs.ECS, track *tracks.Track) {
	if track == nil || track.ScoredLineCount() == 0 {
		log.Printf("Warning: ignoring track with no scored lines")
		return
	}

	if trackEntry, ok := components.Track.First(ecs.World); ok {
		td := components.Track.Get(trackEntry)
		td.Track = track
		td.Frame = 0
		td.LineIndex = 0
		td.CueIndex = 0
		td.LineHits = 0
		td.Finished = false
	}

	SetExpectedLineCount(ecs, track.ScoredLineCount())
}

// SetExpectedLineCount reconfigures the expected scored-line total and
// restarts line counting, without touching health.
func SetExpectedLineCount(ecs *ecs.ECS, n int) {
	if n <= 0 {
		log.Printf("Warning: ignoring non-positive expected line count %d", n)
		return
	}
	entry, ok := components.BossHealth.First(ecs.World)
	if !ok {
		return
	}
	hp := components.BossHealth.Get(entry)
	hp.ExpectedLines = n
	hp.LinesCompleted = 0
}

// ResetBossHealth restores the full pool for a new round.
func ResetBossHealth(ecs *ecs.ECS) {
	entry, ok := components.BossHealth.First(ecs.World)
	if !ok {
		return
	}
	hp := components.BossHealth.Get(entry)
	hp.Current = hp.Max
	hp.TotalDamage = 0
	hp.LinesCompleted = 0
	hp.Defeated = false
}

// BossHealthSnapshot returns the current pool state for UI consumers.
func BossHealthSnapshot(ecs *ecs.ECS) HealthSnapshot {
	entry, ok := components.BossHealth.First(ecs.World)
	if !ok {
		return HealthSnapshot{}
	}
	hp := components.BossHealth.Get(entry)

	percent := 0.0
	if hp.Max > 0 {
		percent = hp.Current / hp.Max
	}
	return HealthSnapshot{
		Current:        hp.Current,
		Max:            hp.Max,
		Percent:        percent,
		TotalDamage:    hp.TotalDamage,
		LinesCompleted: hp.LinesCompleted,
		ExpectedLines:  hp.ExpectedLines,
		Defeated:       hp.Defeated,
	}
}

// triggerDefeat starts the one-time defeat sequence: the boss freezes,
// plays out a death timer, and the scene reacts when it expires. All
// side effects are optional; a headless world just flips the flag.
func triggerDefeat(ecs *ecs.ECS) {
	if bossEntry, ok := tags.Boss.First(ecs.World); ok {
		if !bossEntry.HasComponent(components.Death) {
			donburi.Add(bossEntry, components.Death, &components.DeathData{
				Timer: cfg.BossHealth.DefeatFrames,
			})
		}
		TriggerDamageFlash(bossEntry)
	}
	TriggerScreenShake(ecs, cfg.BossHealth.DefeatShake, cfg.BossHealth.DefeatShakeT)
	PlaySFX(ecs, cfg.SoundDefeat)
}
