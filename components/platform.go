package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData moves a platform along one axis with a ping-pong tween.
type PlatformData struct {
	Sequence *gween.Sequence
	// Horizontal selects the X axis; platforms move vertically otherwise.
	Horizontal bool
}

var Platform = donburi.NewComponentType[PlatformData]()
