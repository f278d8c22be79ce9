package systems

import (
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every platform tween and turns the new position
// into this frame's movement. Swaying tile layers move here as well.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		obj := components.Object.Get(e)

		value := float64(advance(platform.Sequence, dt))
		if platform.Horizontal {
			obj.SetMovement(collision.Vector{X: value - obj.Body.Box.X})
		} else {
			obj.SetMovement(collision.Vector{Y: value - obj.Body.Box.Y})
		}
	})

	space, ok := GetSpace(ecs)
	if !ok || space.Engine != cfg.EngineCustom {
		// The native backend builds its tile shapes once.
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	for layer, seq := range level.Sway {
		value := float64(advance(seq, dt))
		layer.SetMovement(collision.Vector{X: value - layer.Offset().X})
	}
}

// advance steps a ping-pong sequence, restarting it once both legs ran.
func advance(seq *gween.Sequence, dt float32) float32 {
	value, _, done := seq.Update(dt)
	if done {
		seq.Reset()
	}
	return value
}
