package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner    *donburi.Entry
	Damage   int
	FromBoss bool
	High     bool // height classification at spawn (boss shots)
}

var Projectile = donburi.NewComponentType[ProjectileData]()
