package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// FloatingTextData is a short-lived damage/score number that rises and
// fades. Rise is a gween tween over the configured duration; the entity is
// removed when the tween finishes.
type FloatingTextData struct {
	Text  string
	X, Y  float64 // spawn position; rise offsets from here
	Rise  *gween.Tween
	Color color.RGBA
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()
