package components

import (
	"github.com/automoto/doomerang-physics/collision"
	"github.com/yohamta/donburi"
)

// SpaceData holds the collision backend every collider is registered with.
type SpaceData struct {
	collision.Stepper
	Engine string
	// Angle is the world rotation the physics step applies gravity in.
	Angle collision.Angle
}

// System returns the custom engine, or nil when another backend runs.
func (s *SpaceData) System() *collision.System {
	sys, _ := s.Stepper.(*collision.System)
	return sys
}

var Space = donburi.NewComponentType[SpaceData]()
