package systems

import (
	"log"

	"github.com/automoto/doomerang-physics/collision"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the sandbox toggles. Rotation applies at once;
// switching the engine or the resolution mode asks the scene to rebuild.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	changed := false

	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
		changed = true
	}
	if input.JustPressed(cfg.ActionToggleSimple) {
		cfg.Collision.Simple = !cfg.Collision.Simple
		settings.Rebuild = true
		changed = true
	}
	if input.JustPressed(cfg.ActionSwitchEngine) {
		if cfg.Collision.Engine == cfg.EngineNative {
			cfg.Collision.Engine = cfg.EngineCustom
		} else {
			cfg.Collision.Engine = cfg.EngineNative
		}
		settings.Rebuild = true
		changed = true
	}
	if input.JustPressed(cfg.ActionRotateWorld) && rotateWorld(ecs) {
		changed = true
	}

	if changed {
		_ = SaveSettings(CurrentSettings())
	}
}

// rotateWorld turns gravity a quarter clockwise. Only the custom engine
// supports rotation.
func rotateWorld(ecs *ecs.ECS) bool {
	space, ok := GetSpace(ecs)
	if !ok {
		return false
	}
	sys := space.System()
	if sys == nil {
		log.Printf("[sandbox] %s engine cannot rotate the world", space.Engine)
		return false
	}
	next := nextAngle(space.Angle)
	sys.SetAngle(next)
	space.Angle = next
	cfg.Collision.Angle = int(next)
	log.Printf("[sandbox] world angle %d", int(next))
	return true
}

func nextAngle(a collision.Angle) collision.Angle {
	switch a {
	case collision.Angle0:
		return collision.Angle90
	case collision.Angle90:
		return collision.Angle180
	case collision.Angle180:
		return collision.Angle270
	default:
		return collision.Angle0
	}
}
