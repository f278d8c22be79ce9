package factory

import (
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	"github.com/yohamta/donburi"
)

// entityHandler links a collider back to its entity. Pairs collide by the
// default kind table.
type entityHandler struct {
	collision.NopHandler
	entry *donburi.Entry
	kind  collision.ColliderKind
}

func (h *entityHandler) Collides(other *collision.Object, _ collision.Hit) bool {
	return collision.Compatible(h.kind, other.Kind())
}

// playerHandler records what the level did to the player this frame.
type playerHandler struct {
	entityHandler
}

func (h *playerHandler) CollisionSolid(hit collision.Hit) {
	if hit.Crush && h.entry.Valid() {
		components.Player.Get(h.entry).Crushed = true
	}
}

func (h *playerHandler) CollisionTile(attrs collision.TileAttribute) {
	if !h.entry.Valid() {
		return
	}
	components.Physics.Get(h.entry).OnIce = attrs.Has(collision.TileIce)
	if attrs.Has(collision.TileHurts) {
		components.Player.Get(h.entry).Hurt = true
	}
}

// pushableHandler slides on ice like the player does.
type pushableHandler struct {
	entityHandler
}

func (h *pushableHandler) CollisionTile(attrs collision.TileAttribute) {
	if h.entry.Valid() {
		components.Physics.Get(h.entry).OnIce = attrs.Has(collision.TileIce)
	}
}

// platformHandler keeps its path: whatever it runs into is pushed away.
type platformHandler struct {
	entityHandler
}

func (h *platformHandler) Collision(*collision.Object, collision.Hit) collision.HitResponse {
	return collision.ForceMove
}

type sensorHandler struct {
	entityHandler
}

func (h *sensorHandler) Collision(*collision.Object, collision.Hit) collision.HitResponse {
	if h.entry.Valid() {
		components.Sensor.Get(h.entry).Touched++
	}
	return collision.Continue
}
