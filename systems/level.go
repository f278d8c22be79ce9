package systems

import (
	"image/color"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the solid tile layers as flat shapes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	m := components.Level.Get(levelEntry).Map
	if m == nil || !cfg.Debug.ShowTiles {
		return
	}

	for _, layer := range m.Layers() {
		cols, rows := layer.Size()
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				tile, ok := layer.TileAt(x, y)
				if !ok {
					continue
				}
				box := layer.TileBBox(x, y)
				c := tileColor(tile.Attributes)
				if tile.IsSlope() {
					dir := tile.Data
					if layer.VerticalFlip() {
						dir = collision.VerticalFlip(dir)
					}
					strokeTriangle(screen, box, dir, c)
					continue
				}
				if tile.IsUnisolid() {
					// Only the top edge blocks.
					vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), 2, c, false)
					continue
				}
				vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), c, false)
			}
		}
	}
}

func tileColor(attrs collision.TileAttribute) color.Color {
	switch {
	case attrs.Has(collision.TileHurts):
		return cfg.HurtsColor
	case attrs.Has(collision.TileIce):
		return cfg.IceColor
	case attrs.Has(collision.TileUnisolid):
		return cfg.UnisolidColor
	}
	return cfg.TileColor
}

// strokeTriangle outlines the solid half of a slope tile.
func strokeTriangle(screen *ebiten.Image, box collision.Rect, dir int, c color.Color) {
	tl := box.TopLeft()
	tr := collision.Vector{X: box.Right(), Y: box.Top()}
	bl := collision.Vector{X: box.Left(), Y: box.Bottom()}
	br := box.BottomRight()

	var pts [3]collision.Vector
	switch dir & collision.DirectionMask {
	case collision.SouthWest:
		pts = [3]collision.Vector{tl, bl, br}
	case collision.NorthEast:
		pts = [3]collision.Vector{tl, tr, br}
	case collision.SouthEast:
		pts = [3]collision.Vector{tr, br, bl}
	case collision.NorthWest:
		pts = [3]collision.Vector{tl, tr, bl}
	}
	for i, p := range pts {
		n := pts[(i+1)%3]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(n.X), float32(n.Y), 1, c, false)
	}
}
