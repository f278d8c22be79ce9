package components

import (
	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Map *tilemap.Map
	// Sway drives the horizontal drift of each swaying tile layer.
	Sway map[*tilemap.Layer]*gween.Sequence
}

var Level = donburi.NewComponentType[LevelData]()
