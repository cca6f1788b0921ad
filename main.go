package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/lyricfire/assets"
	"github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/scenes"
	"github.com/automoto/lyricfire/systems"
	"github.com/automoto/lyricfire/tracks"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		if track := defaultTrack(); track != nil {
			g.scene = scenes.NewEncounterScene(g, track)
			return g
		}
		log.Printf("Warning: default track %q not found, falling back to menu", config.Tracks.DefaultTrack)
	}
	g.scene = scenes.NewMenuScene(g)

	return g
}

// defaultTrack resolves the configured default track, used when the menu
// is skipped.
func defaultTrack() *tracks.Track {
	for _, t := range tracks.LoadAll(assets.TrackFS(), config.Tracks.Dir) {
		if t.Name == config.Tracks.DefaultTrack {
			return t
		}
	}
	return nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the track select menu and play the default track")
	flag.StringVar(&config.Tracks.DefaultTrack, "track", config.Tracks.DefaultTrack, "track to play with -skip-menu")
	flag.Parse()

	ebiten.SetWindowTitle("Lyricfire")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
		ebiten.SetFullscreen(saved.Fullscreen)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
