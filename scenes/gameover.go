package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/fonts"
	"github.com/automoto/lyricfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the result of one encounter.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       GameResult
	once         sync.Once
}

// NewGameOverScene creates a new game over scene for a finished run.
func NewGameOverScene(sc SceneChanger, result GameResult) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.GetAction(gs.ecs, cfg.ActionMenuSelect).JustPressed {
		systems.PlaySFX(gs.ecs, cfg.SoundMenuSelect)
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.GameOver.OverlayColor, false)

	title := cfg.GameOver.DefeatTitle
	titleColor := cfg.GameOver.DefeatColor
	if gs.result.Victory {
		title = cfg.GameOver.VictoryTitle
		titleColor = cfg.GameOver.VictoryColor
	}

	titleFace := fonts.Title.Get()
	titleWidth := len(title) * 16
	text.Draw(screen, title, titleFace,
		int((width-float64(titleWidth))/2), int(cfg.GameOver.TitleY), titleColor)

	stats := fmt.Sprintf("%s - %s: %d / %d lines",
		gs.result.Track.Artist, gs.result.Track.Title,
		gs.result.LinesCompleted, gs.result.ExpectedLines)
	statsFace := fonts.Regular.Get()
	statsWidth := len(stats) * 8
	text.Draw(screen, stats, statsFace,
		int((width-float64(statsWidth))/2), int(cfg.GameOver.StatsY), cfg.White)

	hintFace := fonts.Small.Get()
	hintWidth := len(cfg.GameOver.ContinueHint) * 6
	text.Draw(screen, cfg.GameOver.ContinueHint, hintFace,
		int((width-float64(hintWidth))/2), int(cfg.GameOver.HintY), cfg.GameOver.HintColor)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
}
