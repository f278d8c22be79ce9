package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePushable creates a crate the player can shove. It falls like the
// player but has no input.
func CreatePushable(ecs *ecs.ECS, box collision.Rect) *donburi.Entry {
	crate := archetypes.Pushable.Spawn(ecs)
	components.Physics.SetValue(crate, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	handler := &pushableHandler{entityHandler{entry: crate, kind: collision.KindPushable}}
	newCollider(ecs, crate, box, collision.KindPushable, handler)
	return crate
}
