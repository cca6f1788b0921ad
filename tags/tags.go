package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Wall       = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvBoss       = "Boss"
	ResolvProjectile = "Projectile"
)
