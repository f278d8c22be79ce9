package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is expressed in the local gravity frame: positive SpeedY
// always falls, whatever the world angle.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	AccelX   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64
	OnGround bool
	OnIce    bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
