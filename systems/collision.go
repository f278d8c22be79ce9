package systems

import (
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSpace returns the collision backend of the scene.
func GetSpace(ecs *ecs.ECS) (*components.SpaceData, bool) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}

// UpdateCollisions steps the collision backend, then folds what each
// mover ran into back into its speeds.
func UpdateCollisions(ecs *ecs.ECS) {
	space, ok := GetSpace(ecs)
	if !ok {
		return
	}
	space.Update(1 / float64(cfg.C.TPS))

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		applyHit(components.Physics.Get(e), components.Object.Get(e))
	})
}

// applyHit stops a mover against whatever blocked it. Hits arrive in the
// local gravity frame, like the speeds.
func applyHit(physics *components.PhysicsData, obj *components.ObjectData) {
	hit := obj.LastHit()
	physics.OnGround = hit.Bottom
	if hit.Bottom && physics.SpeedY > 0 {
		physics.SpeedY = 0
	}
	if hit.Top && physics.SpeedY < 0 {
		physics.SpeedY = 0
	}
	if (hit.Left && physics.SpeedX < 0) || (hit.Right && physics.SpeedX > 0) {
		physics.SpeedX = 0
	}
}
