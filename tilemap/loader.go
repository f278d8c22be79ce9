package tilemap

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/lafriks/go-tiled"
)

// Layer and tile properties read from the TMX file.
const (
	// SolidLayerName is the conventional name of the collision layer. Any
	// other layer takes part when its "collision" property is "solid".
	SolidLayerName = "wg-tiles"

	propCollision  = "collision"
	propFlip       = "flip"
	propSway       = "sway"
	propAttributes = "attributes"
	propSlope      = "slope"
)

// Load parses a TMX file into a Map. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := &Map{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  float64(levelMap.TileWidth),
		TileHeight: float64(levelMap.TileHeight),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayerName && layer.Properties.GetString(propCollision) != "solid" {
			continue
		}
		l, err := buildLayer(levelMap, layer)
		if err != nil {
			return nil, fmt.Errorf("layer %q in %s: %w", layer.Name, tmxPath, err)
		}
		m.layers = append(m.layers, l)
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // older TMX files use type=
			}
			m.spawns = append(m.spawns, Spawn{
				Name:  o.Name,
				Class: strings.ToLower(class),
				Group: og.Name,
				Box:   collision.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				Props: o.Properties,
			})
		}
	}

	// Left to right, so spawn order does not depend on the editor's object ids.
	sort.SliceStable(m.spawns, func(i, j int) bool {
		return m.spawns[i].Box.X < m.spawns[j].Box.X
	})

	log.Printf("[tilemap] loaded %s: %dx%d tiles, %d solid layers, %d spawns",
		m.Name, m.Width, m.Height, len(m.layers), len(m.spawns))
	return m, nil
}

func buildLayer(levelMap *tiled.Map, layer *tiled.Layer) (*Layer, error) {
	l := NewLayer(layer.Name, levelMap.Width, levelMap.Height,
		float64(levelMap.TileWidth), float64(levelMap.TileHeight))
	l.flipped = layer.Properties.GetString(propFlip) == "vertical"
	l.Sway = layer.Properties.GetFloat(propSway)

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) {
				continue
			}
			tile := layer.Tiles[i]
			if tile.IsNil() {
				continue
			}
			t, err := tileFor(tile)
			if err != nil {
				return nil, fmt.Errorf("tile at %d,%d: %w", x, y, err)
			}
			l.Set(x, y, t)
		}
	}
	return l, nil
}

// tileFor reads the collision properties of a placed tile. A tile with no
// "attributes" property is plain solid.
func tileFor(tile *tiled.LayerTile) (collision.Tile, error) {
	t := collision.Tile{Attributes: collision.TileSolid}
	if tile.Tileset == nil {
		return t, nil
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		// Tiles without any custom data are not listed in the tileset.
		return t, nil
	}
	if s := tilesetTile.Properties.GetString(propAttributes); s != "" {
		attrs, err := collision.ParseAttributes(s)
		if err != nil {
			return t, err
		}
		t.Attributes = attrs
	}
	if s := tilesetTile.Properties.GetString(propSlope); s != "" {
		dir, err := collision.ParseSlope(s)
		if err != nil {
			return t, err
		}
		t.Attributes |= collision.TileSlope | collision.TileSolid
		t.Data = dir
	}
	return t, nil
}

// LoadAll discovers every .tmx file in dir within fsys and loads it. It
// returns the maps keyed by file stem plus the sorted stems.
func LoadAll(fsys fs.FS, dir string) (map[string]*Map, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Map, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		m, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[m.Name] = m
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return levels, names, nil
}
