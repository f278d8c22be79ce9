package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the player with its feet at the bottom of spawn.
func CreatePlayer(ecs *ecs.ECS, spawn collision.Rect) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	box := collision.Rect{
		X: spawn.X,
		Y: spawn.Bottom() - cfg.Player.CollisionHeight,
		W: cfg.Player.CollisionWidth,
		H: cfg.Player.CollisionHeight,
	}
	components.Player.SetValue(player, components.PlayerData{
		Direction: 1,
		Spawn:     box,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	handler := &playerHandler{entityHandler{entry: player, kind: collision.KindPlayer}}
	newCollider(ecs, player, box, collision.KindPlayer, handler)
	return player
}
