// Package tilemap provides the level geometry the collision engine resolves
// against, parsed from Tiled TMX files.
package tilemap

import (
	"math"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/lafriks/go-tiled"
)

// Map holds the collision-relevant content of one TMX level.
type Map struct {
	Name       string
	Width      int // in tiles
	Height     int
	TileWidth  float64
	TileHeight float64

	layers []*Layer
	spawns []Spawn
}

var _ collision.Tilemap = (*Map)(nil)

// NewMap assembles a map from ready-made layers. The map takes its size
// from the first layer.
func NewMap(name string, layers ...*Layer) *Map {
	m := &Map{Name: name, layers: layers}
	if len(layers) > 0 {
		m.Width, m.Height = layers[0].Size()
		m.TileWidth, m.TileHeight = layers[0].tileW, layers[0].tileH
	}
	return m
}

// AddSpawn places an object in the map as if it came from the level file.
func (m *Map) AddSpawn(s Spawn) {
	m.spawns = append(m.spawns, s)
}

// SolidLayers returns the layers that take part in collision, in file order.
func (m *Map) SolidLayers() []collision.TileLayer {
	out := make([]collision.TileLayer, len(m.layers))
	for i, l := range m.layers {
		out[i] = l
	}
	return out
}

// Layers returns the concrete solid layers so callers can move them.
func (m *Map) Layers() []*Layer { return m.layers }

// Layer looks a solid layer up by name.
func (m *Map) Layer(name string) (*Layer, bool) {
	for _, l := range m.layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// PixelSize is the size of the level in world units.
func (m *Map) PixelSize() (float64, float64) {
	return float64(m.Width) * m.TileWidth, float64(m.Height) * m.TileHeight
}

// Bounds is the level area, suitable for collision.Options.Bounds.
func (m *Map) Bounds() collision.Rect {
	w, h := m.PixelSize()
	return collision.Rect{W: w, H: h}
}

// Spawns returns every spawn of the given class, sorted left to right.
// An empty class returns them all.
func (m *Map) Spawns(class string) []Spawn {
	var out []Spawn
	for _, s := range m.spawns {
		if class == "" || s.Class == class {
			out = append(out, s)
		}
	}
	return out
}

// Spawn is an object placed in one of the level's object groups.
type Spawn struct {
	Name  string
	Class string
	Group string
	Box   collision.Rect
	Props tiled.Properties
}

// Layer is one solid tile layer. Its tiles move together: Offset is the
// world position of tile (0, 0).
type Layer struct {
	Name string
	// Sway is the horizontal travel, in world units, of a layer that drifts
	// back and forth. Zero for fixed layers.
	Sway float64

	cols, rows int
	tileW      float64
	tileH      float64
	tiles      []collision.Tile
	offset     collision.Vector
	movement   collision.Vector
	flipped    bool
}

var _ collision.TileLayer = (*Layer)(nil)

// NewLayer builds an empty layer of cols x rows tiles.
func NewLayer(name string, cols, rows int, tileW, tileH float64) *Layer {
	return &Layer{
		Name:  name,
		cols:  cols,
		rows:  rows,
		tileW: tileW,
		tileH: tileH,
		tiles: make([]collision.Tile, cols*rows),
	}
}

// Set places a tile. Out-of-range cells are ignored.
func (l *Layer) Set(x, y int, t collision.Tile) {
	if !l.inside(x, y) {
		return
	}
	l.tiles[y*l.cols+x] = t
}

func (l *Layer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.cols && y < l.rows
}

func (l *Layer) Size() (int, int) { return l.cols, l.rows }

func (l *Layer) TilesOverlapping(r collision.Rect) collision.TileRange {
	left := (r.Left() - l.offset.X) / l.tileW
	right := (r.Right() - l.offset.X) / l.tileW
	top := (r.Top() - l.offset.Y) / l.tileH
	bottom := (r.Bottom() - l.offset.Y) / l.tileH
	return collision.TileRange{
		Left:   clamp(int(math.Floor(left)), l.cols),
		Top:    clamp(int(math.Floor(top)), l.rows),
		Right:  clamp(int(math.Floor(right))+1, l.cols),
		Bottom: clamp(int(math.Floor(bottom))+1, l.rows),
	}
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}

func (l *Layer) TileAt(x, y int) (collision.Tile, bool) {
	if !l.inside(x, y) {
		return collision.Tile{}, false
	}
	t := l.tiles[y*l.cols+x]
	return t, t.Attributes != 0
}

func (l *Layer) TileBBox(x, y int) collision.Rect {
	return collision.Rect{
		X: l.offset.X + float64(x)*l.tileW,
		Y: l.offset.Y + float64(y)*l.tileH,
		W: l.tileW,
		H: l.tileH,
	}
}

func (l *Layer) Movement() collision.Vector { return l.movement }
func (l *Layer) VerticalFlip() bool         { return l.flipped }
func (l *Layer) Offset() collision.Vector   { return l.offset }

// SetFlipped mirrors the layer's slopes, for levels played upside down.
func (l *Layer) SetFlipped(f bool) { l.flipped = f }

// SetMovement moves the layer by v and records v as this frame's movement,
// which objects standing on the layer inherit. Call it before the collision
// update of the frame, with a zero vector on frames the layer rests.
func (l *Layer) SetMovement(v collision.Vector) {
	l.offset = l.offset.Add(v)
	l.movement = v
}
