package systems

import (
	"math/rand"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss drives the boss locomotion and pose state machine.
func UpdateBoss(ecs *ecs.ECS) {
	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		// Frozen during the defeat sequence
		if e.HasComponent(components.Death) {
			return
		}

		boss := components.Boss.Get(e)
		updateBossPose(e, boss)
		updateBossAnimState(e, boss)
	})
}

// updateBossPose advances one locomotion tick. The order is load-bearing:
// the crouch pose must be re-applied every tick, even while paused, and a
// boundary bounce overrides a direction flip rolled in the same tick.
func updateBossPose(e *donburi.Entry, boss *components.BossData) {
	obj := bossObject(e)

	// Pin the standing height every tick so drift from other systems
	// never accumulates.
	if !boss.IsCrouching {
		setBossCenterY(e, boss, boss.StandingY)
	}

	updateCrouch(e, boss)

	if boss.IsPaused {
		boss.PauseTimer--
		if boss.PauseTimer <= 0 {
			boss.IsPaused = false
		}
		// Paused ticks never move or roll direction changes.
		return
	}

	if rand.Float64() < boss.PauseChance {
		boss.IsPaused = true
		boss.PauseTimer = boss.PauseDuration
		return
	}

	if rand.Float64() < boss.ChangeDirectionChance {
		boss.Direction.X *= -1
	}

	if obj == nil {
		return
	}
	x := bossCenterX(obj) + boss.MoveSpeed*boss.Direction.X
	if x <= boss.MinX {
		x = boss.MinX
		boss.Direction.X = 1
	} else if x >= boss.MaxX {
		x = boss.MaxX
		boss.Direction.X = -1
	}
	setBossCenterX(obj, x)
}

// updateCrouch runs the Standing/Crouching sub-state machine. Only one
// crouch can be active; while one runs, the crouched pose is re-applied
// every tick so other systems cannot undo it mid-crouch.
func updateCrouch(e *donburi.Entry, boss *components.BossData) {
	if boss.IsCrouching {
		boss.CrouchTimer--
		if boss.CrouchTimer <= 0 {
			stopCrouch(e, boss)
			return
		}
		applyCrouchPose(e, boss)
		return
	}

	if rand.Float64() < boss.CrouchChance {
		startCrouch(e, boss)
	}
}

func startCrouch(e *donburi.Entry, boss *components.BossData) {
	boss.IsCrouching = true
	boss.CrouchTimer = boss.CrouchDuration

	// Capture base offsets exactly once per part across the whole
	// encounter; a later crouch reuses the first recording.
	if rig := bossRig(e); rig != nil {
		for _, part := range rig.Parts {
			if !part.BaseRecorded {
				part.BaseOffsetY = part.OffsetY
				part.BaseRecorded = true
			}
		}
	}

	applyCrouchPose(e, boss)
}

// applyCrouchPose writes the crouched pose. Missing rig or collision
// object degrades to a partial (or empty) write, never an error.
func applyCrouchPose(e *donburi.Entry, boss *components.BossData) {
	setBossCenterY(e, boss, boss.StandingY+cfg.Boss.CrouchYOffset)

	rig := bossRig(e)
	if rig == nil {
		return
	}
	rig.VerticalScale = rig.BaseScale / cfg.Boss.CrouchScaleFactor

	if head := rig.Part(components.PartHead); head != nil && head.BaseRecorded {
		head.OffsetY = head.BaseOffsetY + cfg.Boss.CrouchHeadDrop
	}
	upperDrop := cfg.Boss.CrouchHeadDrop * cfg.Boss.CrouchUpperDropScale
	for _, role := range []components.PartRole{components.PartTorso, components.PartWeapon} {
		if part := rig.Part(role); part != nil && part.BaseRecorded {
			part.OffsetY = part.BaseOffsetY + upperDrop
		}
	}
}

// stopCrouch restores the exact pre-crouch pose from the recorded bases.
func stopCrouch(e *donburi.Entry, boss *components.BossData) {
	boss.IsCrouching = false
	boss.CrouchTimer = 0

	setBossCenterY(e, boss, boss.StandingY)

	rig := bossRig(e)
	if rig == nil {
		return
	}
	rig.VerticalScale = rig.BaseScale
	for _, part := range rig.Parts {
		if part.BaseRecorded {
			part.OffsetY = part.BaseOffsetY
		}
	}
}

func updateBossAnimState(e *donburi.Entry, boss *components.BossData) {
	if !e.HasComponent(components.State) {
		return
	}
	state := components.State.Get(e)
	state.StateTimer++

	var target cfg.StateID
	switch {
	case boss.IsCrouching:
		target = cfg.Crouch
	case boss.IsPaused:
		target = cfg.Idle
	default:
		target = cfg.Walk
	}
	if target != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = target
		state.StateTimer = 0
	}
}

// ResetBoss restores locomotion to its spawn pose: standing, unpaused,
// facing left at startX. Every timer is cleared so nothing bleeds into the
// next encounter.
func ResetBoss(ecs *ecs.ECS, startX float64) {
	e, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	boss := components.Boss.Get(e)

	if boss.IsCrouching {
		stopCrouch(e, boss)
	}
	boss.IsPaused = false
	boss.PauseTimer = 0
	boss.CrouchTimer = 0
	boss.Direction = components.Vector{X: cfg.DirectionLeft, Y: 0}

	if e.HasComponent(components.Death) {
		donburi.Remove[components.DeathData](e, components.Death)
	}
	if e.HasComponent(components.State) {
		state := components.State.Get(e)
		state.CurrentState = cfg.Idle
		state.PreviousState = cfg.StateNone
		state.StateTimer = 0
	}

	SetBossStartX(ecs, startX)
	setBossCenterY(e, boss, boss.StandingY)
}

// SetBossStartX repositions the boss for scripted transitions, clamped to
// the pacing boundaries.
func SetBossStartX(ecs *ecs.ECS, x float64) {
	e, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	boss := components.Boss.Get(e)
	if x < boss.MinX {
		x = boss.MinX
	}
	if x > boss.MaxX {
		x = boss.MaxX
	}
	if obj := bossObject(e); obj != nil {
		setBossCenterX(obj, x)
	}
}

// bossObject returns the boss collision object, or nil when the renderable
// side of the boss has not been attached. Pose writes are skipped then.
func bossObject(e *donburi.Entry) *components.ObjectData {
	if !e.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil {
		return nil
	}
	return obj
}

func bossRig(e *donburi.Entry) *components.RigData {
	if !e.HasComponent(components.Rig) {
		return nil
	}
	return components.Rig.Get(e)
}

func bossCenterX(obj *components.ObjectData) float64 {
	return obj.X + obj.W/2
}

func setBossCenterX(obj *components.ObjectData, x float64) {
	obj.X = x - obj.W/2
	obj.Update()
}

// setBossCenterY moves the boss vertically and sizes the hitbox for the
// current pose: the crouched hitbox is shorter, dropped from the top, so
// shots that would clip a standing boss pass over a crouched one.
func setBossCenterY(e *donburi.Entry, boss *components.BossData, centerY float64) {
	obj := bossObject(e)
	if obj == nil {
		return
	}

	h := cfg.Boss.CollisionHeight
	if boss.IsCrouching {
		h -= cfg.Boss.CrouchHitboxDrop
	}
	obj.H = h
	obj.Y = centerY - h/2
	obj.Update()
}

func bossCenterY(obj *components.ObjectData) float64 {
	return obj.Y + obj.H/2
}
