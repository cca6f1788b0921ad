package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/automoto/lyricfire/tracks"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// defeatDelayFrames keeps the encounter on screen briefly after the player
// falls before cutting to the result screen.
const defeatDelayFrames = 60

// EncounterScene runs one track against the boss.
type EncounterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	track        *tracks.Track
	once         sync.Once
	defeatTimer  int
}

// NewEncounterScene creates an encounter scene for the chosen track.
func NewEncounterScene(sc SceneChanger, track *tracks.Track) *EncounterScene {
	return &EncounterScene{sceneChanger: sc, track: track}
}

func (es *EncounterScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()

	if systems.BossDefeatDone(es.ecs) {
		es.finish(true)
		return
	}

	if systems.PlayerDefeated(es.ecs) {
		es.defeatTimer++
		if es.defeatTimer >= defeatDelayFrames {
			es.finish(false)
		}
		return
	}

	// The track can run out with the boss still alive when too many lines
	// were missed. That still ends the run.
	if systems.TrackFinished(es.ecs) {
		es.finish(false)
	}
}

func (es *EncounterScene) finish(victory bool) {
	snap := systems.BossHealthSnapshot(es.ecs)
	systems.RecordResult(es.track.Name, snap.LinesCompleted, victory)
	systems.FadeOutMusic(es.ecs)

	es.sceneChanger.ChangeScene(NewGameOverScene(es.sceneChanger, GameResult{
		Victory:        victory,
		Track:          es.track,
		LinesCompleted: snap.LinesCompleted,
		ExpectedLines:  snap.ExpectedLines,
	}))
}

func (es *EncounterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EncounterScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks. The boss pose updates before
	// the song clock so fire cues sample the pose of the same tick.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBoss))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFireControl))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTrack))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawStage)
	ecs.AddRenderer(cfg.Default, systems.DrawBoss)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Default, systems.DrawFloatingText)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	es.ecs = ecs

	// World setup. The space must exist before anything registers
	// collision objects.
	factory.CreateSpace(es.ecs, float64(cfg.C.Width), float64(cfg.C.Height))
	stage := factory.CreateStage(es.ecs)
	stageData := components.Stage.Get(stage)

	factory.CreateCamera(es.ecs)
	factory.CreateTrackClock(es.ecs)
	factory.CreateFireControl(es.ecs)
	factory.CreatePlayer(es.ecs, stageData.PlayerSpawnX)
	factory.CreateBoss(es.ecs, stageData.BossSpawnX, stageData.CatwalkY)

	systems.SetCurrentTrack(es.ecs, es.track)
	systems.ResetHUD()

	if es.track.Music != "" {
		systems.PlayMusic(es.ecs, es.track.Music)
	}
}
