package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider, marks the sides it was blocked on
// last frame and prints the engine state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		box := obj.BBox()
		if e.HasComponent(components.Sensor) {
			vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), cfg.SensorColor, false)
			return
		}
		strokeRect(screen, box, kindColor(obj.Kind()))
		drawHit(screen, box, obj.LastHit())
	})

	if !cfg.Debug.Enabled {
		return
	}
	drawHUD(ecs, screen)
}

func kindColor(k collision.ColliderKind) color.Color {
	switch k {
	case collision.KindPlayer:
		return cfg.PlayerColor
	case collision.KindPlatform:
		return cfg.PlatformColor
	case collision.KindPushable:
		return cfg.PushableColor
	}
	return cfg.WallColor
}

func strokeRect(screen *ebiten.Image, r collision.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// drawHit thickens the blocked sides. Hits are local to gravity, so this
// is exact only at angle 0.
func drawHit(screen *ebiten.Image, r collision.Rect, hit collision.Hit) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	c := cfg.HitColor
	if hit.Top {
		vector.FillRect(screen, x, y, w, 2, c, false)
	}
	if hit.Bottom {
		vector.FillRect(screen, x, y+h-2, w, 2, c, false)
	}
	if hit.Left {
		vector.FillRect(screen, x, y, 2, h, c, false)
	}
	if hit.Right {
		vector.FillRect(screen, x+w-2, y, 2, h, c, false)
	}
	if hit.Crush {
		vector.StrokeLine(screen, x, y, x+w, y+h, 1, c, false)
		vector.StrokeLine(screen, x+w, y, x, y+h, 1, c, false)
	}
}

func drawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()),
		fmt.Sprintf("engine %s  simple %v", cfg.Collision.Engine, cfg.Collision.Simple),
	}
	if space, ok := GetSpace(ecs); ok {
		lines = append(lines, fmt.Sprintf("angle %d", int(space.Angle)))
	}
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		lines = append(lines,
			fmt.Sprintf("hit %s  ground %v  ice %v", obj.LastHit(), physics.OnGround, physics.OnIce),
			fmt.Sprintf("speed %.2f,%.2f  deaths %d", physics.SpeedX, physics.SpeedY, player.Deaths),
		)
	})
	components.Sensor.Each(ecs.World, func(e *donburi.Entry) {
		sensor := components.Sensor.Get(e)
		lines = append(lines, fmt.Sprintf("sensor %s: %d", sensor.Name, sensor.Touched))
	})
	lines = append(lines, "F1 debug  F2 simple  F3 rotate  F4 engine  R reset")

	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 4, 4+i*14)
	}
}
