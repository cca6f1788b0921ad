package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FireControlData arbitrates where boss shots spawn and whether a requested
// shot height is allowed. LastOrigin is the cached result of the most recent
// successful origin computation; it is returned unchanged when the boss pose
// is unavailable. SwitchTimer is the frame-counted window that must drain
// before the boss may alternate between high and low shots.
type FireControlData struct {
	LastOrigin math.Vec2
	HasOrigin  bool

	LastShotHigh bool
	HasFired     bool
	SwitchTimer  int // frames remaining before an opposite-height shot is allowed
}

var FireControl = donburi.NewComponentType[FireControlData]()
