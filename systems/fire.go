package systems

import (
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateFireControl drains the high/low switch window each tick.
func UpdateFireControl(ecs *ecs.ECS) {
	fcEntry, ok := components.FireControl.First(ecs.World)
	if !ok {
		return
	}
	fc := components.FireControl.Get(fcEntry)
	if fc.SwitchTimer > 0 {
		fc.SwitchTimer--
	}
}

// ComputeFireOrigin resolves the current muzzle world position from the
// boss pose: fixed offsets from the boss center, an extra drop while
// crouched, and a barrel-tip correction over the weapon part's world
// position when the rig provides one. When no boss pose is available the
// last successfully computed origin is returned unchanged, so callers
// always get a usable point.
func ComputeFireOrigin(ecs *ecs.ECS) math.Vec2 {
	fcEntry, ok := components.FireControl.First(ecs.World)
	if !ok {
		return math.Vec2{}
	}
	fc := components.FireControl.Get(fcEntry)

	bossEntry, ok := tags.Boss.First(ecs.World)
	if !ok {
		return fc.LastOrigin
	}
	obj := bossObject(bossEntry)
	if obj == nil {
		return fc.LastOrigin
	}

	boss := components.Boss.Get(bossEntry)
	facing := boss.Direction.X
	if facing == 0 {
		facing = cfg.DirectionRight
	}

	cx := bossCenterX(obj)
	cy := bossCenterY(obj)
	x := cx + cfg.Fire.MuzzleOffsetX*facing
	y := cy + cfg.Fire.MuzzleOffsetY
	if boss.IsCrouching {
		y += cfg.Fire.CrouchMuzzleDrop
	}

	if rig := bossRig(bossEntry); rig != nil {
		if weapon := rig.Part(components.PartWeapon); weapon != nil {
			wx, wy := rig.PartWorldPosition(weapon, cx, cy, facing)
			x = wx + cfg.Fire.BarrelTipOffsetX*facing
			y = wy + cfg.Fire.BarrelTipOffsetY
			if boss.IsCrouching {
				y += cfg.Fire.CrouchBarrelDrop
			}
		}
	}

	fc.LastOrigin = math.Vec2{X: x, Y: y}
	fc.HasOrigin = true
	return fc.LastOrigin
}

// CanFireAtHeight gates the boss's high/low shot alternation. A spawn
// height at or above the threshold row classifies as High (screen Y grows
// downward). Repeats of the last classification always pass and re-arm the
// switch window; an opposite-height request passes only once the window
// has drained. A rejected request leaves the gate untouched.
func CanFireAtHeight(ecs *ecs.ECS, y float64) bool {
	fcEntry, ok := components.FireControl.First(ecs.World)
	if !ok {
		return true
	}
	fc := components.FireControl.Get(fcEntry)

	high := y <= cfg.Fire.HighThresholdY

	if !fc.HasFired || high == fc.LastShotHigh {
		fc.HasFired = true
		fc.LastShotHigh = high
		fc.SwitchTimer = cfg.Fire.SwitchCooldown
		return true
	}

	if fc.SwitchTimer > 0 {
		return false
	}

	fc.LastShotHigh = high
	fc.SwitchTimer = cfg.Fire.SwitchCooldown
	return true
}

// ResetFireControl clears the gate and cache for a new encounter.
func ResetFireControl(ecs *ecs.ECS) {
	fcEntry, ok := components.FireControl.First(ecs.World)
	if !ok {
		return
	}
	fc := components.FireControl.Get(fcEntry)
	*fc = components.FireControlData{}
}
