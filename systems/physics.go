package systems

import (
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates speeds in the local gravity frame and hands the
// resulting displacement, rotated into the world, to the collision step.
func UpdatePhysics(ecs *ecs.ECS) {
	angle := collision.Angle0
	if space, ok := GetSpace(ecs); ok {
		angle = space.Angle
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		friction := physics.Friction
		if physics.OnIce {
			friction = cfg.Player.IceFriction
		}
		dir := 0.0
		if physics.AccelX != 0 {
			dir = 1
		}
		physics.SpeedX = gamemath.Accelerate(physics.SpeedX, physics.AccelX, friction, physics.MaxSpeed, dir)
		physics.SpeedY = gamemath.Fall(physics.SpeedY, physics.Gravity, cfg.Physics.MaxFallSpeed)

		// Re-reported by the tile callbacks while still standing on ice.
		physics.OnIce = false

		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e)
		obj.SetMovement(angle.FromLocal(collision.Vector{X: physics.SpeedX, Y: physics.SpeedY}))
	})
}
