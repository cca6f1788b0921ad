package systems

import (
	"fmt"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/fonts"
	"github.com/automoto/lyricfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// displayedHealth trails the real pool so the bar drains smoothly instead
// of snapping on each scored line.
var displayedHealth = -1.0

// DrawHUD renders the boss bar, line progress, player hearts and the
// active lyric.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	drawBossBar(ecs, screen, width)
	drawPlayerHearts(ecs, screen)
	drawLyric(ecs, screen, width)
}

func drawBossBar(ecs *ecs.ECS, screen *ebiten.Image, width float64) {
	snap := BossHealthSnapshot(ecs)
	if snap.Max <= 0 {
		return
	}

	if displayedHealth < 0 {
		displayedHealth = snap.Current
	}
	displayedHealth += (snap.Current - displayedHealth) * cfg.HUD.DrainSmooth

	barX := (width - cfg.HUD.BarWidth) / 2
	barY := cfg.HUD.BarMargin

	vector.DrawFilledRect(screen,
		float32(barX), float32(barY),
		float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
		cfg.HUD.BarBack, false)

	fill := cfg.HUD.BarFill
	if snap.Current/snap.Max <= cfg.HUD.LowThreshold {
		fill = cfg.HUD.BarLow
	}
	ratio := displayedHealth / snap.Max
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen,
		float32(barX), float32(barY),
		float32(cfg.HUD.BarWidth*ratio), float32(cfg.HUD.BarHeight),
		fill, false)

	progress := fmt.Sprintf("%d / %d", snap.LinesCompleted, snap.ExpectedLines)
	face := fonts.Small.Get()
	text.Draw(screen, progress, face,
		int(barX+cfg.HUD.BarWidth+8), int(barY+cfg.HUD.BarHeight), cfg.White)
}

func drawPlayerHearts(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	const size, gap = 8.0, 4.0
	for i := 0; i < hp.Max; i++ {
		c := cfg.LightRed
		if i >= hp.Current {
			c = cfg.HUD.BarBack
		}
		x := cfg.HUD.BarMargin + float64(i)*(size+gap)
		vector.DrawFilledRect(screen,
			float32(x), float32(cfg.HUD.BarMargin),
			size, size, c, false)
	}
}

func drawLyric(ecs *ecs.ECS, screen *ebiten.Image, width float64) {
	lyric, active := CurrentLyric(ecs)
	c := cfg.HUD.LyricColor
	if !active {
		lyric = "..."
		c = cfg.HUD.LyricDim
	}

	face := fonts.Regular.Get()
	lyricWidth := len(lyric) * 8
	text.Draw(screen, lyric, face,
		int((width-float64(lyricWidth))/2), int(cfg.HUD.LyricY), c)
}

// ResetHUD clears the smoothed bar so a new round starts full.
func ResetHUD() {
	displayedHealth = -1
}
