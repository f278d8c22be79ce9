package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a static block. Tiles already cover level geometry;
// walls are for solids placed as objects.
func CreateWall(ecs *ecs.ECS, box collision.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	handler := &entityHandler{entry: wall, kind: collision.KindBlock}
	newCollider(ecs, wall, box, collision.KindBlock, handler)
	return wall
}
