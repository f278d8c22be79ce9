package factory

import (
	"log"

	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/nativephys"
	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision backend selected in the configuration
// over the tiles of m, which may be nil.
func CreateSpace(ecs *ecs.ECS, m *tilemap.Map) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	data := components.SpaceData{Engine: cfg.Collision.Engine}
	switch cfg.Collision.Engine {
	case cfg.EngineNative:
		// The native backend has no world rotation.
		data.Stepper = nativephys.NewWorld(m)
		data.Angle = collision.Angle0
	default:
		data.Engine = cfg.EngineCustom
		data.Angle = cfg.Collision.WorldAngle()
		opts := collision.Options{
			Simple:   cfg.Collision.Simple,
			CellSize: cfg.Collision.CellSize,
			Angle:    data.Angle,
		}
		var tiles collision.Tilemap
		if m != nil {
			tiles = m
			opts.Bounds = m.Bounds()
		}
		data.Stepper = collision.NewSystem(tiles, opts)
	}
	components.Space.SetValue(space, data)

	log.Printf("[sandbox] %s collision engine (simple=%v, angle=%d)",
		data.Engine, cfg.Collision.Simple, int(data.Angle))
	return space
}

// register adds a collider to the space, if one exists yet.
func register(ecs *ecs.ECS, o *collision.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(o)
	}
}

// newCollider builds the collider of entry and links it in.
func newCollider(ecs *ecs.ECS, entry *donburi.Entry, box collision.Rect, kind collision.ColliderKind, handler collision.Handler) *components.ObjectData {
	body := collision.NewRectBody(box, kind)
	obj := components.ObjectData{
		Object: collision.NewObject(body, handler),
		Body:   body,
	}
	components.Object.SetValue(entry, obj)
	register(ecs, obj.Object)
	return components.Object.Get(entry)
}
