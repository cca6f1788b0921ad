package systems

import (
	"image/color"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/fonts"
	"github.com/automoto/lyricfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset converts world coordinates to screen coordinates. The camera
// position is the world point at the screen center, so with a centered
// camera the offset is just the active shake.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(screen.Bounds().Dx())/2,
		camera.Position.Y - float64(screen.Bounds().Dy())/2
}

// DrawStage renders the arena geometry: backdrop, floor and the catwalk
// the boss paces on.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY := cameraOffset(ecs, screen)

	stageEntry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)

	screen.Fill(color.RGBA{R: 16, G: 12, B: 28, A: 255})

	// Floor
	vector.DrawFilledRect(screen,
		float32(-offX), float32(stage.FloorY-offY),
		float32(stage.Width), float32(stage.Height-stage.FloorY),
		cfg.Stage.WallColor, false)

	// Catwalk deck, drawn just below the boss's feet
	deckY := stage.CatwalkY + cfg.Boss.CollisionHeight/2
	vector.DrawFilledRect(screen,
		float32(stage.MinX-40-offX), float32(deckY-offY),
		float32(stage.MaxX-stage.MinX+80), 6,
		cfg.Stage.WallColor, false)
}

// DrawBoss renders the boss as its rig parts, scaled to the current pose.
// During the defeat sequence the rig flickers out.
func DrawBoss(ecs *ecs.ECS, screen *ebiten.Image) {
	bossEntry, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	obj := bossObject(bossEntry)
	if obj == nil {
		return
	}

	if bossEntry.HasComponent(components.Death) {
		death := components.Death.Get(bossEntry)
		if death.Timer <= 0 {
			return
		}
		if (death.Timer/4)%2 == 0 {
			return
		}
	}

	offX, offY := cameraOffset(ecs, screen)
	boss := components.Boss.Get(bossEntry)
	rig := bossRig(bossEntry)

	facing := boss.Direction.X
	if facing == 0 {
		facing = cfg.DirectionRight
	}
	cx := bossCenterX(obj)
	cy := bossCenterY(obj)

	if rig == nil {
		vector.DrawFilledRect(screen,
			float32(obj.X-offX), float32(obj.Y-offY),
			float32(obj.W), float32(obj.H),
			cfg.Magenta, false)
		return
	}

	flashing := isFlashing(bossEntry)
	drawPart := func(part *components.RigPart) {
		px, py := rig.PartWorldPosition(part, cx, cy, facing)
		h := part.Height * rig.VerticalScale
		c := part.Color
		if flashing {
			c = flashTint(c)
		}
		vector.DrawFilledRect(screen,
			float32(px-part.Width/2-offX), float32(py-h/2-offY),
			float32(part.Width), float32(h),
			c, false)
	}

	// Legs first so upper parts overlap them
	for _, leg := range rig.Legs {
		drawPart(leg)
	}
	for _, part := range rig.Parts {
		drawPart(part)
	}
}

// DrawPlayer renders the player box, flickering during invulnerability.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	if obj == nil || obj.Object == nil {
		return
	}

	if player.InvulnFrames > 0 && (player.InvulnFrames/4)%2 == 0 {
		return
	}

	offX, offY := cameraOffset(ecs, screen)
	c := cfg.LightBlue
	if isFlashing(playerEntry) {
		c = flashTint(c)
	}
	vector.DrawFilledRect(screen,
		float32(obj.X-offX), float32(obj.Y-offY),
		float32(obj.W), float32(obj.H),
		c, false)
}

// DrawProjectiles renders all live shots.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY := cameraOffset(ecs, screen)

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		proj := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		c := cfg.Yellow
		if proj.FromBoss {
			c = cfg.LightRed
			if proj.High {
				c = cfg.Magenta
			}
		}
		vector.DrawFilledRect(screen,
			float32(obj.X-offX), float32(obj.Y-offY),
			float32(obj.W), float32(obj.H),
			c, false)
	})
}

// DrawFloatingText renders rising damage numbers.
func DrawFloatingText(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY := cameraOffset(ecs, screen)
	face := fonts.Regular.Get()

	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		rise := 0.0
		if ft.Rise != nil {
			v, _ := ft.Rise.Update(0)
			rise = float64(v)
		}
		text.Draw(screen, ft.Text, face,
			int(ft.X-offX), int(ft.Y-rise-offY), ft.Color)
	})
}

func isFlashing(e *donburi.Entry) bool {
	if !e.HasComponent(components.Flash) {
		return false
	}
	return components.Flash.Get(e).Duration > 0
}

// flashTint pushes a color toward white for the hit flash.
func flashTint(c color.RGBA) color.RGBA {
	lift := func(v uint8) uint8 {
		n := int(v) + 140
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
