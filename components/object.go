package components

import (
	"github.com/automoto/doomerang-physics/collision"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collider. Body is the authoritative box the
// collision backends read and translate.
type ObjectData struct {
	*collision.Object
	Body *collision.RectBody
}

var Object = donburi.NewComponentType[ObjectData]()
