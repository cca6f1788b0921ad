package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv collision object shared by the boss, player,
// walls and shots. Nil Object means the entity has no physical presence yet.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
