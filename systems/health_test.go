package systems

import (
	"math"
	"testing"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newHealthWorld(t *testing.T, expectedLines int) (*ecs.ECS, *components.BossHealthData) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, float64(cfg.C.Width), float64(cfg.C.Height))
	bossEntry := factory.CreateBoss(e, 300, 120)

	boss := components.Boss.Get(bossEntry)
	boss.PauseChance = 0
	boss.ChangeDirectionChance = 0
	boss.CrouchChance = 0

	SetExpectedLineCount(e, expectedLines)
	return e, components.BossHealth.Get(bossEntry)
}

func TestApplyLineDamage_PerLineRounding(t *testing.T) {
	e, hp := newHealthWorld(t, 35)
	perLine := math.Round(hp.Max / 35)

	result := ApplyLineDamage(e, "first verse", true)
	if result.Damage != perLine {
		t.Errorf("expected per-line damage %v, got %v", perLine, result.Damage)
	}
	if hp.Current != hp.Max-perLine {
		t.Errorf("expected pool %v, got %v", hp.Max-perLine, hp.Current)
	}
	if result.FinalLine || result.Defeated {
		t.Errorf("first line flagged final/defeated: %+v", result)
	}
}

func TestApplyLineDamage_UnsuccessfulLineIsNoOp(t *testing.T) {
	e, hp := newHealthWorld(t, 35)

	result := ApplyLineDamage(e, "missed verse", false)
	if result.Damage != 0 {
		t.Errorf("expected no damage for missed line, got %v", result.Damage)
	}
	if hp.Current != hp.Max || hp.LinesCompleted != 0 {
		t.Errorf("missed line changed state: current=%v lines=%d", hp.Current, hp.LinesCompleted)
	}
}

func TestApplyLineDamage_DepletesOnFinalLine(t *testing.T) {
	e, hp := newHealthWorld(t, 35)

	for i := 0; i < 34; i++ {
		result := ApplyLineDamage(e, "verse", true)
		if result.Defeated {
			t.Fatalf("boss defeated early on line %d", i+1)
		}
	}
	if hp.Current <= 0 {
		t.Fatalf("pool already empty after 34 of 35 lines: %v", hp.Current)
	}

	result := ApplyLineDamage(e, "last chorus", true)
	if !result.FinalLine {
		t.Errorf("expected final-line flag on line 35")
	}
	if !result.Defeated || !hp.Defeated {
		t.Errorf("expected defeat on line 35, got %+v", result)
	}
	if hp.Current != 0 {
		t.Errorf("expected exactly zero health, got %v", hp.Current)
	}
}

func TestApplyLineDamage_FinalLineAbsorbsRoundingDeficit(t *testing.T) {
	// round(1000/3) = 333 leaves 334 for the last line; it must still kill.
	e, hp := newHealthWorld(t, 3)
	if hp.Max != 1000 {
		t.Skipf("pool size changed, rounding fixture no longer applies")
	}

	ApplyLineDamage(e, "one", true)
	ApplyLineDamage(e, "two", true)
	result := ApplyLineDamage(e, "three", true)

	if result.Damage != 334 {
		t.Errorf("expected final line to deal the 334 remainder, got %v", result.Damage)
	}
	if hp.Current != 0 || !hp.Defeated {
		t.Errorf("expected exact depletion, got current=%v defeated=%v", hp.Current, hp.Defeated)
	}
}

func TestApplyLineDamage_AfterDefeatIsNoOp(t *testing.T) {
	e, hp := newHealthWorld(t, 2)

	ApplyLineDamage(e, "one", true)
	ApplyLineDamage(e, "two", true)
	if !hp.Defeated {
		t.Fatalf("expected defeat after both lines")
	}
	lines := hp.LinesCompleted

	result := ApplyLineDamage(e, "encore", true)
	if result.Damage != 0 || result.Defeated {
		t.Errorf("expected post-defeat no-op, got %+v", result)
	}
	if hp.LinesCompleted != lines {
		t.Errorf("post-defeat line counted: %d -> %d", lines, hp.LinesCompleted)
	}
}

func TestSetExpectedLineCount_RestartsCountingOnly(t *testing.T) {
	e, hp := newHealthWorld(t, 10)

	ApplyLineDamage(e, "verse", true)
	drained := hp.Current

	SetExpectedLineCount(e, 5)
	if hp.LinesCompleted != 0 {
		t.Errorf("expected line counter restarted, got %d", hp.LinesCompleted)
	}
	if hp.Current != drained {
		t.Errorf("expected health untouched: %v -> %v", drained, hp.Current)
	}

	SetExpectedLineCount(e, 0)
	if hp.ExpectedLines != 5 {
		t.Errorf("expected non-positive count ignored, got %d", hp.ExpectedLines)
	}
}

func TestResetBossHealth(t *testing.T) {
	e, hp := newHealthWorld(t, 2)

	ApplyLineDamage(e, "one", true)
	ApplyLineDamage(e, "two", true)

	ResetBossHealth(e)
	if hp.Current != hp.Max || hp.TotalDamage != 0 || hp.LinesCompleted != 0 || hp.Defeated {
		t.Errorf("expected full restore, got %+v", hp)
	}
}
