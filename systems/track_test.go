package systems

import (
	"testing"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/automoto/lyricfire/tags"
	"github.com/automoto/lyricfire/tracks"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTrackWorld(t *testing.T, track *tracks.Track) (*ecs.ECS, *components.TrackData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, float64(cfg.C.Width), float64(cfg.C.Height))
	factory.CreateFireControl(e)
	trackEntry := factory.CreateTrackClock(e)
	bossEntry := factory.CreateBoss(e, 300, 120)

	boss := components.Boss.Get(bossEntry)
	boss.PauseChance = 0
	boss.ChangeDirectionChance = 0
	boss.CrouchChance = 0

	SetCurrentTrack(e, track)
	return e, components.Track.Get(trackEntry)
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func runTicks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateBoss(e)
		UpdateFireControl(e)
		UpdateTrack(e)
	}
}

func TestUpdateTrack_CueSpawnsShot(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{{At: 0, Duration: 2, Text: "verse"}},
		Cues:  []tracks.Cue{{At: 0.1, Height: "high"}},
	}
	e, td := newTrackWorld(t, track)

	runTicks(e, 10)

	if got := countProjectiles(e); got != 1 {
		t.Errorf("expected 1 shot after the cue, got %d", got)
	}
	if td.CueIndex != 1 {
		t.Errorf("expected cue consumed, got index %d", td.CueIndex)
	}
}

func TestUpdateTrack_ScoresOnLineClose(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{
			{At: 0, Duration: 0.5, Text: "first"},
			{At: 0.5, Duration: 0.5, Text: "second"},
		},
	}
	e, td := newTrackWorld(t, track)
	hp := components.BossHealth.Get(mustFirst(t, e, components.BossHealth))

	td.LineHits = 2
	runTicks(e, 30) // closes the first window

	if hp.LinesCompleted != 1 {
		t.Fatalf("expected first line scored, got %d lines", hp.LinesCompleted)
	}
	if hp.Current != hp.Max-500 {
		t.Errorf("expected half the pool gone (2 expected lines), got %v", hp.Current)
	}
	if td.LineHits != 0 {
		t.Errorf("expected hit counter reset at close, got %d", td.LineHits)
	}

	// No hits during the second window: it closes without damage.
	runTicks(e, 30)
	if hp.LinesCompleted != 1 {
		t.Errorf("expected missed line unscored, got %d lines", hp.LinesCompleted)
	}
	if !td.Finished {
		t.Errorf("expected track finished after both windows closed")
	}
}

func TestUpdateTrack_InstrumentalLinesDoNotScore(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{
			{At: 0, Duration: 0.5, Text: ""},
			{At: 0.5, Duration: 0.5, Text: "verse"},
		},
	}
	e, td := newTrackWorld(t, track)
	hp := components.BossHealth.Get(mustFirst(t, e, components.BossHealth))

	runTicks(e, 30) // closes the instrumental window

	if td.LineIndex != 1 {
		t.Errorf("expected instrumental window consumed, got index %d", td.LineIndex)
	}
	if hp.LinesCompleted != 0 || hp.Current != hp.Max {
		t.Errorf("instrumental line scored: lines=%d current=%v", hp.LinesCompleted, hp.Current)
	}
}

func TestUpdateTrack_StopsAfterDefeat(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{{At: 0, Duration: 0.5, Text: "only"}},
		Cues:  []tracks.Cue{{At: 1.0, Height: "high"}},
	}
	e, td := newTrackWorld(t, track)

	td.LineHits = 1
	runTicks(e, 30)

	hp := components.BossHealth.Get(mustFirst(t, e, components.BossHealth))
	if !hp.Defeated {
		t.Fatalf("expected defeat on the only scored line")
	}

	// The dead boss ignores the remaining cue.
	runTicks(e, 60)
	if got := countProjectiles(e); got != 0 {
		t.Errorf("expected no shots after defeat, got %d", got)
	}
	if !td.Finished {
		t.Errorf("expected track finished once lines and cues are exhausted")
	}
}

func TestCurrentLyric(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{{At: 0.5, Duration: 1, Text: "chorus"}},
	}
	e, _ := newTrackWorld(t, track)

	if _, active := CurrentLyric(e); active {
		t.Errorf("expected no active lyric before the window opens")
	}

	runTicks(e, 40)
	line, active := CurrentLyric(e)
	if !active || line != "chorus" {
		t.Errorf("expected active lyric %q, got %q (active=%v)", "chorus", line, active)
	}
}

func TestResetTrack(t *testing.T) {
	track := &tracks.Track{
		Title: "t",
		Lines: []tracks.Line{{At: 0, Duration: 0.5, Text: "verse"}},
		Cues:  []tracks.Cue{{At: 0.1, Height: "low"}},
	}
	e, td := newTrackWorld(t, track)

	runTicks(e, 60)
	if !td.Finished {
		t.Fatalf("expected track to finish")
	}

	ResetTrack(e)
	if td.Frame != 0 || td.LineIndex != 0 || td.CueIndex != 0 || td.Finished {
		t.Errorf("expected rewound clock, got %+v", td)
	}
	if td.Track == nil {
		t.Errorf("expected track binding kept across reset")
	}
}

func mustFirst(t *testing.T, e *ecs.ECS, c *donburi.ComponentType[components.BossHealthData]) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	if !ok {
		t.Fatalf("missing component %v", c)
	}
	return entry
}
