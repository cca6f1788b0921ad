package systems

import (
	"fmt"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi/ecs"
)

// TicksPerSecond is the fixed simulation rate the song clock converts
// track timestamps with.
const TicksPerSecond = 60

// UpdateTrack advances the song clock one tick, triggers due boss fire
// cues, and closes out lyric lines whose window has ended. A line counts
// as successful when the player landed at least one hit during its window.
func UpdateTrack(ecs *ecs.ECS) {
	trackEntry, ok := components.Track.First(ecs.World)
	if !ok {
		return
	}
	td := components.Track.Get(trackEntry)
	if td.Track == nil || td.Finished {
		return
	}

	td.Frame++
	now := float64(td.Frame) / TicksPerSecond

	for td.CueIndex < len(td.Track.Cues) && now >= td.Track.Cues[td.CueIndex].At {
		cue := td.Track.Cues[td.CueIndex]
		td.CueIndex++
		requestBossShot(ecs, cue.Height == "high")
	}

	for td.LineIndex < len(td.Track.Lines) {
		line := td.Track.Lines[td.LineIndex]
		if now < line.At+line.Duration {
			break
		}
		td.LineIndex++

		if line.Text == "" {
			// Instrumental break, nothing to score.
			continue
		}

		successful := td.LineHits > 0
		td.LineHits = 0
		result := ApplyLineDamage(ecs, line.Text, successful)
		presentLineResult(ecs, result, successful)
	}

	if td.LineIndex >= len(td.Track.Lines) && td.CueIndex >= len(td.Track.Cues) {
		td.Finished = true
	}
}

// requestBossShot is the single projectile-creation call site: it asks the
// arbitrator for the current origin and the height gate for permission,
// and only then builds the shot. A rejected height simply drops the cue.
func requestBossShot(ecs *ecs.ECS, high bool) {
	bossEntry, ok := tags.Boss.First(ecs.World)
	if !ok || bossEntry.HasComponent(components.Death) {
		return
	}

	origin := ComputeFireOrigin(ecs)
	y := origin.Y
	if !high {
		y += cfg.Fire.LowShotDrop
	}

	if !CanFireAtHeight(ecs, y) {
		return
	}

	factory.CreateBossShot(ecs, origin.X, y, y <= cfg.Fire.HighThresholdY)
	PlaySFX(ecs, cfg.SoundBossShot)
}

// presentLineResult runs the fire-and-forget presentation for a closed
// line: damage numbers, shake, sound. Gameplay state is already final.
func presentLineResult(ecs *ecs.ECS, result LineResult, successful bool) {
	if !successful {
		PlaySFX(ecs, cfg.SoundLineMiss)
		return
	}

	if bossEntry, ok := tags.Boss.First(ecs.World); ok {
		if obj := bossObject(bossEntry); obj != nil {
			color := cfg.FloatingText.Color
			if result.FinalLine {
				color = cfg.FloatingText.FinalColor
			}
			factory.CreateFloatingText(ecs,
				bossCenterX(obj), obj.Y-8,
				fmt.Sprintf("-%.0f", result.Damage), color)
		}
		TriggerDamageFlash(bossEntry)
	}

	TriggerScreenShake(ecs, cfg.ScreenShake.LineHitIntensity, cfg.ScreenShake.LineHitDuration)
	PlaySFX(ecs, cfg.SoundLineClear)
}

// ResetTrack rewinds the song clock without unbinding the track.
func ResetTrack(ecs *ecs.ECS) {
	trackEntry, ok := components.Track.First(ecs.World)
	if !ok {
		return
	}
	td := components.Track.Get(trackEntry)
	td.Frame = 0
	td.LineIndex = 0
	td.CueIndex = 0
	td.LineHits = 0
	td.Finished = false
}

// TrackFinished reports whether the bound track has played out all of its
// lines and cues.
func TrackFinished(ecs *ecs.ECS) bool {
	trackEntry, ok := components.Track.First(ecs.World)
	if !ok {
		return false
	}
	return components.Track.Get(trackEntry).Finished
}

// CurrentLyric returns the line whose window contains the current song
// position, and whether one is active. Used by the HUD.
func CurrentLyric(ecs *ecs.ECS) (string, bool) {
	trackEntry, ok := components.Track.First(ecs.World)
	if !ok {
		return "", false
	}
	td := components.Track.Get(trackEntry)
	if td.Track == nil {
		return "", false
	}

	now := float64(td.Frame) / TicksPerSecond
	for i := td.LineIndex; i < len(td.Track.Lines); i++ {
		line := td.Track.Lines[i]
		if now < line.At {
			break
		}
		if now < line.At+line.Duration && line.Text != "" {
			return line.Text, true
		}
	}
	return "", false
}
