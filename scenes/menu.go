package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/lyricfire/assets"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems"
	"github.com/automoto/lyricfire/tracks"
	"github.com/automoto/lyricfire/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the track select menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.TrackSelectUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)

	trackList := loadTrackList()
	results := loadTrackResults()

	ms.menuUI = ui.NewTrackSelectUI(trackList, results, func(track *tracks.Track) {
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(NewEncounterScene(ms.sceneChanger, track))
	})
}

func loadTrackList() []*tracks.Track {
	list := tracks.LoadAll(assets.TrackFS(), cfg.Tracks.Dir)
	if len(list) == 0 {
		log.Printf("Warning: no playable tracks found under %q", cfg.Tracks.Dir)
	}
	return list
}

func loadTrackResults() map[string]ui.TrackResult {
	saved := systems.LoadResults()
	results := map[string]ui.TrackResult{}
	for name, lines := range saved.BestLines {
		r := results[name]
		r.BestLines = lines
		results[name] = r
	}
	for name, cleared := range saved.Cleared {
		r := results[name]
		r.Cleared = cleared
		results[name] = r
	}
	return results
}
