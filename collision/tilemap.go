package collision

// Tilemap is the level geometry the system resolves against.
type Tilemap interface {
	SolidLayers() []TileLayer
}

// TileRange is a half-open range of tile indices: Right and Bottom are exclusive.
type TileRange struct {
	Left, Top, Right, Bottom int
}

type TileLayer interface {
	// TilesOverlapping returns the index range covering r, clamped to the layer.
	TilesOverlapping(r Rect) TileRange
	TileAt(x, y int) (Tile, bool)
	TileBBox(x, y int) Rect
	// Movement is how far the whole layer moves this frame.
	Movement() Vector
	// VerticalFlip reports whether the layer is drawn upside down, which
	// mirrors its slopes.
	VerticalFlip() bool
}

// Triangle returns the slope shape of a slope tile occupying bbox.
func (t Tile) Triangle(bbox Rect, flipped bool) AATriangle {
	dir := t.Data
	if flipped {
		dir = VerticalFlip(dir)
	}
	return NewAATriangle(bbox, dir)
}

// noTiles is used when a system is built without a level.
type noTiles struct{}

func (noTiles) SolidLayers() []TileLayer { return nil }
