package systems

import (
	"log"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// respawnMargin is how far outside the level the player may fall before
// being put back at the spawn.
const respawnMargin = 64

func UpdatePlayer(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	var outside func(e *donburi.Entry) bool
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		bounds := components.Level.Get(levelEntry).Map.Bounds().Grown(respawnMargin)
		outside = func(e *donburi.Entry) bool {
			return !bounds.Overlaps(components.Object.Get(e).BBox())
		}
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		died := player.Crushed || player.Hurt || (outside != nil && outside(e))
		if died || input.JustPressed(cfg.ActionReset) {
			respawn(e, died)
			return
		}

		physics.AccelX = 0
		switch {
		case input.Pressed(cfg.ActionMoveLeft) && !input.Pressed(cfg.ActionMoveRight):
			player.Direction = -1
			physics.AccelX = -cfg.Player.Acceleration
		case input.Pressed(cfg.ActionMoveRight) && !input.Pressed(cfg.ActionMoveLeft):
			player.Direction = 1
			physics.AccelX = cfg.Player.Acceleration
		}

		if input.JustPressed(cfg.ActionJump) && physics.OnGround {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.OnGround = false
		}
	})
}

// respawn puts the player back at its spawn at rest.
func respawn(e *donburi.Entry, died bool) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	obj.Body.Box = player.Spawn
	obj.SetMovement(collision.Vector{})
	physics.SpeedX, physics.SpeedY, physics.AccelX = 0, 0, 0
	physics.OnGround, physics.OnIce = false, false

	if died {
		player.Deaths++
	}
	player.Crushed, player.Hurt = false, false
	log.Printf("[sandbox] player respawned (deaths=%d)", player.Deaths)
}
