package components

import (
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi"
)

// StageData is the loaded encounter stage: the Tiled map (may be nil when
// the embedded map fails to load) plus the resolved layout values every
// system reads. Layout falls back to config defaults when the map does not
// provide an object for it.
type StageData struct {
	Map *tiled.Map

	Width  float64
	Height float64

	FloorY   float64
	CatwalkY float64
	MinX     float64
	MaxX     float64

	PlayerSpawnX float64
	BossSpawnX   float64
}

var Stage = donburi.NewComponentType[StageData]()
