package factory

import (
	"math"

	"github.com/automoto/lyricfire/archetypes"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoss spawns the boss on the catwalk, builds its rig from the part
// layout and registers its collision object.
func CreateBoss(ecs *ecs.ECS, centerX, centerY float64) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	obj := resolv.NewObject(
		centerX-cfg.Boss.CollisionWidth/2,
		centerY-cfg.Boss.CollisionHeight/2,
		cfg.Boss.CollisionWidth,
		cfg.Boss.CollisionHeight,
		tags.ResolvBoss,
	)
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	var minX, maxX float64 = cfg.Stage.MinX, cfg.Stage.MaxX
	if stageEntry, ok := components.Stage.First(ecs.World); ok {
		stage := components.Stage.Get(stageEntry)
		minX = stage.MinX
		maxX = stage.MaxX
	}

	components.Boss.SetValue(boss, components.BossData{
		Direction: components.Vector{X: cfg.DirectionLeft, Y: 0},

		MoveSpeed: cfg.Boss.MoveSpeed,
		MinX:      minX,
		MaxX:      maxX,
		StandingY: centerY,

		PauseChance:   cfg.Boss.PauseChance,
		PauseDuration: cfg.Boss.PauseDuration,

		ChangeDirectionChance: cfg.Boss.ChangeDirectionChance,

		CrouchChance:   cfg.Boss.CrouchChance,
		CrouchDuration: cfg.Boss.CrouchDuration,
	})

	components.Rig.SetValue(boss, buildRig(cfg.Boss.Parts))

	components.BossHealth.SetValue(boss, components.BossHealthData{
		Current:       cfg.BossHealth.MaxHealth,
		Max:           cfg.BossHealth.MaxHealth,
		ExpectedLines: cfg.BossHealth.DefaultLines,
	})

	components.State.SetValue(boss, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})

	components.Flash.SetValue(boss, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return boss
}

// buildRig classifies the configured part layout into tracked roles. Parts
// at or below the leg cutoff are cosmetic legs. Of the rest, the highest
// part is the head; a part reaching past the lateral threshold is the
// weapon; anything remaining is torso.
func buildRig(specs []cfg.RigPartSpec) components.RigData {
	rig := components.RigData{
		Parts:         map[components.PartRole]*components.RigPart{},
		VerticalScale: cfg.Boss.BaseScale,
		BaseScale:     cfg.Boss.BaseScale,
	}

	var upper []*components.RigPart
	for _, spec := range specs {
		part := &components.RigPart{
			Name:    spec.Name,
			LocalX:  spec.LocalX,
			OffsetY: spec.LocalY,
			Width:   spec.Width,
			Height:  spec.Height,
			Color:   spec.Color,
		}
		if spec.LocalY >= cfg.Boss.LegCutoffY {
			rig.Legs = append(rig.Legs, part)
			continue
		}
		upper = append(upper, part)
	}

	// Head is the highest upper part (Y grows downward)
	headIdx := -1
	minY := math.Inf(1)
	for i, part := range upper {
		if part.OffsetY < minY {
			minY = part.OffsetY
			headIdx = i
		}
	}

	for i, part := range upper {
		switch {
		case i == headIdx:
			rig.Parts[components.PartHead] = part
		case math.Abs(part.LocalX) >= cfg.Boss.WeaponLateralMin:
			rig.Parts[components.PartWeapon] = part
		default:
			rig.Parts[components.PartTorso] = part
		}
	}

	return rig
}
