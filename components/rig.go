package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// PartRole identifies a tracked body part of the boss rig.
type PartRole int

const (
	PartHead PartRole = iota
	PartTorso
	PartWeapon
)

// RigPart is one renderable body part, positioned relative to the rig center.
// OffsetY is the live vertical offset the pose controller mutates; BaseOffsetY
// is captured exactly once, the first time a crouch begins, and restored
// verbatim when the crouch ends. The Recorded flag (rather than a zero check)
// decides whether capture has happened, since a legitimate base offset can
// be zero.
type RigPart struct {
	Name    string
	LocalX  float64
	OffsetY float64
	Width   float64
	Height  float64
	Color   color.RGBA

	BaseOffsetY  float64
	BaseRecorded bool
}

// RigData is the boss's renderable rig: the classified tracked parts, the
// cosmetic legs, and the vertical scale the crouch pose compresses.
// Entities without a rig skip all pose mutation.
type RigData struct {
	Parts map[PartRole]*RigPart
	Legs  []*RigPart // no individual state, drawn as-is

	VerticalScale float64
	BaseScale     float64
}

var Rig = donburi.NewComponentType[RigData]()

// Part returns the tracked part for a role, or nil if the rig has no part
// classified under it.
func (r *RigData) Part(role PartRole) *RigPart {
	if r == nil || r.Parts == nil {
		return nil
	}
	return r.Parts[role]
}

// PartWorldPosition resolves a part's current world position given the rig
// owner's center and facing. Lateral offsets mirror with the facing
// direction; vertical offsets follow the live OffsetY the pose controller
// maintains.
func (r *RigData) PartWorldPosition(part *RigPart, centerX, centerY, facing float64) (float64, float64) {
	if facing == 0 {
		facing = 1
	}
	return centerX + part.LocalX*facing, centerY + part.OffsetY
}
