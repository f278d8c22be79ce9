package factory

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a platform that travels dx or dy pixels and back.
// With both zero it rises by the configured travel.
func CreatePlatform(ecs *ecs.ECS, box collision.Rect, dx, dy float64, duration float32) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	if duration <= 0 {
		duration = cfg.Platform.Duration
	}
	if dx == 0 && dy == 0 {
		dy = -cfg.Platform.Travel
	}

	// The platform moves using a *gween.Sequence of tweens, moving it back and forth.
	data := components.PlatformData{Horizontal: dx != 0}
	from, to := float32(box.Y), float32(box.Y+dy)
	if data.Horizontal {
		from, to = float32(box.X), float32(box.X+dx)
	}
	data.Sequence = gween.NewSequence(
		gween.New(from, to, duration, ease.Linear),
		gween.New(to, from, duration, ease.Linear),
	)
	components.Platform.SetValue(platform, data)

	handler := &platformHandler{entityHandler{entry: platform, kind: collision.KindPlatform}}
	newCollider(ecs, platform, box, collision.KindPlatform, handler)
	return platform
}
