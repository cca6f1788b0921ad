package systems

import (
	"testing"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newFireWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, float64(cfg.C.Width), float64(cfg.C.Height))
	factory.CreateFireControl(e)
	bossEntry := factory.CreateBoss(e, 300, 120)

	boss := components.Boss.Get(bossEntry)
	boss.PauseChance = 0
	boss.ChangeDirectionChance = 0
	boss.CrouchChance = 0

	return e, bossEntry
}

func TestComputeFireOrigin_FollowsPose(t *testing.T) {
	e, bossEntry := newFireWorld(t)
	boss := components.Boss.Get(bossEntry)

	standing := ComputeFireOrigin(e)

	boss.IsCrouching = true
	crouched := ComputeFireOrigin(e)

	if crouched.Y <= standing.Y {
		t.Errorf("expected crouched origin below standing (Y-down): standing %v, crouched %v",
			standing.Y, crouched.Y)
	}
	if crouched.X != standing.X {
		t.Errorf("expected crouch to leave X alone: standing %v, crouched %v",
			standing.X, crouched.X)
	}
}

func TestComputeFireOrigin_MirrorsWithFacing(t *testing.T) {
	e, bossEntry := newFireWorld(t)
	boss := components.Boss.Get(bossEntry)
	obj := components.Object.Get(bossEntry)
	cx := bossCenterX(obj)

	boss.Direction = components.Vector{X: cfg.DirectionRight}
	right := ComputeFireOrigin(e)

	boss.Direction = components.Vector{X: cfg.DirectionLeft}
	left := ComputeFireOrigin(e)

	if right.X <= cx {
		t.Errorf("expected right-facing origin right of center %v, got %v", cx, right.X)
	}
	if left.X >= cx {
		t.Errorf("expected left-facing origin left of center %v, got %v", cx, left.X)
	}
	if right.Y != left.Y {
		t.Errorf("expected facing flip to leave Y alone: right %v, left %v", right.Y, left.Y)
	}
}

func TestComputeFireOrigin_CachesLastOrigin(t *testing.T) {
	e, bossEntry := newFireWorld(t)

	cached := ComputeFireOrigin(e)

	// Boss gone: the arbitrator must keep returning the cached point.
	e.World.Remove(bossEntry.Entity())
	got := ComputeFireOrigin(e)

	if got != cached {
		t.Errorf("expected cached origin %v after boss removal, got %v", cached, got)
	}
}

func TestCanFireAtHeight_FirstShotAlwaysAllowed(t *testing.T) {
	e, _ := newFireWorld(t)

	if !CanFireAtHeight(e, cfg.Fire.HighThresholdY+50) {
		t.Errorf("expected first shot allowed at any height")
	}
}

func TestCanFireAtHeight_RepeatsAllowedOppositeGated(t *testing.T) {
	e, _ := newFireWorld(t)

	highY := cfg.Fire.HighThresholdY - 10
	lowY := cfg.Fire.HighThresholdY + 10

	if !CanFireAtHeight(e, highY) {
		t.Fatalf("first high shot rejected")
	}
	if !CanFireAtHeight(e, highY) {
		t.Errorf("expected same-height repeat allowed during cooldown")
	}
	if CanFireAtHeight(e, lowY) {
		t.Errorf("expected opposite height rejected during cooldown")
	}

	// A rejection must not disturb the gate: highs still pass.
	if !CanFireAtHeight(e, highY) {
		t.Errorf("expected high still allowed after rejected low")
	}

	// Drain the switch window; the opposite height then passes.
	for i := 0; i < cfg.Fire.SwitchCooldown; i++ {
		UpdateFireControl(e)
	}
	if !CanFireAtHeight(e, lowY) {
		t.Errorf("expected low allowed after cooldown drained")
	}

	// The switch re-arms the window, so flipping straight back is gated.
	if CanFireAtHeight(e, highY) {
		t.Errorf("expected high rejected right after switching to low")
	}
}

func TestCanFireAtHeight_ThresholdRowIsHigh(t *testing.T) {
	e, _ := newFireWorld(t)

	if !CanFireAtHeight(e, cfg.Fire.HighThresholdY) {
		t.Fatalf("threshold shot rejected")
	}

	fcEntry, _ := components.FireControl.First(e.World)
	fc := components.FireControl.Get(fcEntry)
	if !fc.LastShotHigh {
		t.Errorf("expected a shot exactly at the threshold row to classify as High")
	}
}

func TestResetFireControl(t *testing.T) {
	e, _ := newFireWorld(t)

	ComputeFireOrigin(e)
	CanFireAtHeight(e, 50)
	ResetFireControl(e)

	fcEntry, _ := components.FireControl.First(e.World)
	fc := components.FireControl.Get(fcEntry)
	if fc.HasFired || fc.HasOrigin || fc.SwitchTimer != 0 {
		t.Errorf("expected zeroed fire control after reset, got %+v", fc)
	}
}
