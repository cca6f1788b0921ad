package systems

import (
	"testing"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newBossWorld builds a minimal world with a boss whose random rolls are
// pinned off, so locomotion is fully deterministic.
func newBossWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, float64(cfg.C.Width), float64(cfg.C.Height))
	bossEntry := factory.CreateBoss(e, 300, 120)

	boss := components.Boss.Get(bossEntry)
	boss.PauseChance = 0
	boss.ChangeDirectionChance = 0
	boss.CrouchChance = 0

	return e, bossEntry
}

func TestBossPacing_BouncesAtBoundaries(t *testing.T) {
	e, bossEntry := newBossWorld(t)
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)

	boss.MinX = 100
	boss.MaxX = 500
	boss.MoveSpeed = 50
	boss.Direction = components.Vector{X: cfg.DirectionLeft}
	setBossCenterX(obj, 120)

	UpdateBoss(e)
	if got := bossCenterX(obj); got != 100 {
		t.Errorf("expected boss clamped to MinX 100, got %v", got)
	}
	if boss.Direction.X != cfg.DirectionRight {
		t.Errorf("expected direction flipped right at left boundary, got %v", boss.Direction.X)
	}

	setBossCenterX(obj, 480)
	UpdateBoss(e)
	if got := bossCenterX(obj); got != 500 {
		t.Errorf("expected boss clamped to MaxX 500, got %v", got)
	}
	if boss.Direction.X != cfg.DirectionLeft {
		t.Errorf("expected direction flipped left at right boundary, got %v", boss.Direction.X)
	}
}

func TestBossPause_FreezesMovementAndExpires(t *testing.T) {
	e, bossEntry := newBossWorld(t)
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)

	boss.IsPaused = true
	boss.PauseTimer = 3
	startX := bossCenterX(obj)

	for i := 0; i < 3; i++ {
		UpdateBoss(e)
		if got := bossCenterX(obj); got != startX {
			t.Fatalf("tick %d: paused boss moved from %v to %v", i, startX, got)
		}
	}
	if boss.IsPaused {
		t.Errorf("expected pause cleared after 3 ticks")
	}

	UpdateBoss(e)
	if got := bossCenterX(obj); got == startX {
		t.Errorf("expected boss to resume moving after pause")
	}
}

func TestBossCrouch_RestoresPoseExactly(t *testing.T) {
	e, bossEntry := newBossWorld(t)
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)
	rig := components.Rig.Get(bossEntry)

	baseOffsets := map[string]float64{}
	for _, part := range rig.Parts {
		baseOffsets[part.Name] = part.OffsetY
	}
	baseScale := rig.VerticalScale
	baseH := obj.H
	baseY := bossCenterY(obj)

	// Force a crouch on the next tick, then let it expire.
	boss.CrouchChance = 1
	UpdateBoss(e)
	if !boss.IsCrouching {
		t.Fatalf("expected crouch to start")
	}
	if rig.VerticalScale != rig.BaseScale/cfg.Boss.CrouchScaleFactor {
		t.Errorf("crouched scale: expected %v, got %v",
			rig.BaseScale/cfg.Boss.CrouchScaleFactor, rig.VerticalScale)
	}
	if obj.H != cfg.Boss.CollisionHeight-cfg.Boss.CrouchHitboxDrop {
		t.Errorf("crouched hitbox: expected height %v, got %v",
			cfg.Boss.CollisionHeight-cfg.Boss.CrouchHitboxDrop, obj.H)
	}

	head := rig.Part(components.PartHead)
	if head == nil {
		t.Fatalf("rig has no head part")
	}
	if expected := baseOffsets[head.Name] + cfg.Boss.CrouchHeadDrop; head.OffsetY != expected {
		t.Errorf("crouched head offset: expected %v, got %v", expected, head.OffsetY)
	}

	boss.CrouchChance = 0
	boss.CrouchTimer = 1
	UpdateBoss(e)
	if boss.IsCrouching {
		t.Fatalf("expected crouch to end")
	}

	for _, part := range rig.Parts {
		if part.OffsetY != baseOffsets[part.Name] {
			t.Errorf("part %s: expected restored offset %v, got %v",
				part.Name, baseOffsets[part.Name], part.OffsetY)
		}
	}
	if rig.VerticalScale != baseScale {
		t.Errorf("expected restored scale %v, got %v", baseScale, rig.VerticalScale)
	}
	if obj.H != baseH {
		t.Errorf("expected restored hitbox height %v, got %v", baseH, obj.H)
	}
	if got := bossCenterY(obj); got != baseY {
		t.Errorf("expected restored center Y %v, got %v", baseY, got)
	}
}

func TestBossCrouch_TicksWhilePaused(t *testing.T) {
	e, bossEntry := newBossWorld(t)
	boss := components.Boss.Get(bossEntry)

	boss.CrouchChance = 1
	UpdateBoss(e)
	if !boss.IsCrouching {
		t.Fatalf("expected crouch to start")
	}
	boss.CrouchChance = 0

	boss.IsPaused = true
	boss.PauseTimer = 10
	before := boss.CrouchTimer
	UpdateBoss(e)
	if boss.CrouchTimer != before-1 {
		t.Errorf("expected crouch timer to tick while paused: before %d, after %d",
			before, boss.CrouchTimer)
	}
}

func TestResetBoss_ClearsAllTimers(t *testing.T) {
	e, bossEntry := newBossWorld(t)
	boss := components.Boss.Get(bossEntry)

	boss.CrouchChance = 1
	UpdateBoss(e)
	boss.IsPaused = true
	boss.PauseTimer = 30
	donburi.Add(bossEntry, components.Death, &components.DeathData{Timer: 20})

	ResetBoss(e, 250)

	if boss.IsCrouching || boss.IsPaused {
		t.Errorf("expected standing unpaused boss after reset")
	}
	if boss.PauseTimer != 0 || boss.CrouchTimer != 0 {
		t.Errorf("expected cleared timers, got pause=%d crouch=%d",
			boss.PauseTimer, boss.CrouchTimer)
	}
	if bossEntry.HasComponent(components.Death) {
		t.Errorf("expected death component removed on reset")
	}
	if got := bossCenterX(components.Object.Get(bossEntry)); got != 250 {
		t.Errorf("expected boss at startX 250, got %v", got)
	}
}
