package systems

import (
	"testing"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/automoto/lyricfire/tracks"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestResetEncounter_RestoresEveryField(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{
			{At: 0, Duration: 0.5, Text: "first"},
			{At: 0.5, Duration: 0.5, Text: "second"},
		},
		Cues: []tracks.Cue{{At: 0.1, Height: "high"}},
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, float64(cfg.C.Width), float64(cfg.C.Height))
	factory.CreateFireControl(e)
	factory.CreateTrackClock(e)
	playerEntry := factory.CreatePlayer(e, 320)
	bossEntry := factory.CreateBoss(e, 300, 120)

	boss := components.Boss.Get(bossEntry)
	boss.PauseChance = 0
	boss.ChangeDirectionChance = 0
	boss.CrouchChance = 0
	SetCurrentTrack(e, track)

	// Dirty everything a round can touch: timers, pose, gate, health,
	// player pool and a shot still in flight.
	boss.IsPaused = true
	boss.PauseTimer = 30
	td := components.Track.Get(mustFirstTrack(t, e))
	td.LineHits = 1
	for i := 0; i < 35; i++ {
		UpdateBoss(e)
		UpdateFireControl(e)
		UpdateTrack(e)
	}
	hp := components.BossHealth.Get(mustFirst(t, e, components.BossHealth))
	if hp.Current == hp.Max {
		t.Fatalf("setup: expected the first line to drain health")
	}
	components.Health.Get(playerEntry).Current = 1

	ResetEncounter(e)

	if boss.IsPaused || boss.IsCrouching || boss.PauseTimer != 0 || boss.CrouchTimer != 0 {
		t.Errorf("boss timers survived reset: %+v", boss)
	}
	if hp.Current != hp.Max || hp.LinesCompleted != 0 || hp.TotalDamage != 0 || hp.Defeated {
		t.Errorf("health pool survived reset: %+v", hp)
	}
	fc := components.FireControl.Get(mustFirstFire(t, e))
	if fc.HasFired || fc.HasOrigin || fc.SwitchTimer != 0 {
		t.Errorf("fire gate survived reset: %+v", fc)
	}
	if td.Frame != 0 || td.LineIndex != 0 || td.CueIndex != 0 || td.LineHits != 0 || td.Finished {
		t.Errorf("song clock survived reset: %+v", td)
	}
	health := components.Health.Get(playerEntry)
	if health.Current != health.Max {
		t.Errorf("player pool survived reset: %+v", health)
	}
	if got := countProjectiles(e); got != 0 {
		t.Errorf("expected in-flight shots cleared, got %d", got)
	}
}

func mustFirstTrack(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Track.First(e.World)
	if !ok {
		t.Fatalf("missing track clock")
	}
	return entry
}

func mustFirstFire(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.FireControl.First(e.World)
	if !ok {
		t.Fatalf("missing fire control")
	}
	return entry
}
