package factory

import (
	"log"

	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity. Layers with a sway property get a
// tween that drifts them sideways and back.
func CreateLevel(ecs *ecs.ECS, m *tilemap.Map) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	data := components.LevelData{
		Map:  m,
		Sway: make(map[*tilemap.Layer]*gween.Sequence),
	}
	for _, layer := range m.Layers() {
		if layer.Sway == 0 {
			continue
		}
		d := cfg.Platform.SwayDuration
		data.Sway[layer] = gween.NewSequence(
			gween.New(0, float32(layer.Sway), d, ease.InOutSine),
			gween.New(float32(layer.Sway), 0, d, ease.InOutSine),
		)
	}
	components.Level.SetValue(level, data)
	return level
}

// SpawnAll creates an entity for every spawn in m and returns how many it
// created. A level without a player spawn gets one in its top-left corner.
func SpawnAll(ecs *ecs.ECS, m *tilemap.Map) int {
	created := 0
	hasPlayer := false
	for _, s := range m.Spawns("") {
		switch s.Class {
		case tags.SpawnPlayer:
			if hasPlayer {
				log.Printf("[sandbox] extra player spawn %q ignored", s.Name)
				continue
			}
			hasPlayer = true
			CreatePlayer(ecs, s.Box)
		case tags.SpawnBlock:
			CreateWall(ecs, s.Box)
		case tags.SpawnPushable:
			CreatePushable(ecs, s.Box)
		case tags.SpawnSensor:
			CreateSensor(ecs, s.Name, s.Box)
		case tags.SpawnPlatform:
			CreatePlatform(ecs, s.Box,
				s.Props.GetFloat("dx"), s.Props.GetFloat("dy"),
				float32(s.Props.GetFloat("duration")))
		default:
			log.Printf("[sandbox] unknown spawn class %q (%s) ignored", s.Class, s.Name)
			continue
		}
		created++
	}
	if !hasPlayer {
		CreatePlayer(ecs, collision.Rect{X: m.TileWidth, Y: 0, W: m.TileWidth, H: 2 * m.TileHeight})
		created++
	}
	return created
}
