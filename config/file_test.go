package config

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore puts the globals back after a test that overlays them.
func restore(t *testing.T) {
	collisionCfg, physics, player := Collision, Physics, Player
	platform, level, debug := Platform, Level, Debug
	t.Cleanup(func() {
		Collision, Physics, Player = collisionCfg, physics, player
		Platform, Level, Debug = platform, level, debug
	})
}

func TestLoadFileOverlays(t *testing.T) {
	restore(t)
	fsys := fstest.MapFS{"sandbox.yaml": &fstest.MapFile{Data: []byte(`
collision:
  engine: native
  angle: -90
physics:
  gravity: 0.5
debug:
  enabled: false
`)}}

	gravityBefore := Physics.MaxFallSpeed
	jump := Player.JumpSpeed

	require.NoError(t, LoadFile(fsys, "sandbox.yaml"))

	assert.Equal(t, EngineNative, Collision.Engine)
	assert.Equal(t, collision.Angle270, Collision.WorldAngle())
	assert.Equal(t, 32, Collision.CellSize, "keys left out keep their value")
	assert.Equal(t, 0.5, Physics.Gravity)
	assert.Equal(t, gravityBefore, Physics.MaxFallSpeed)
	assert.Equal(t, jump, Player.JumpSpeed)
	assert.False(t, Debug.Enabled)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	restore(t)
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown engine", "collision:\n  engine: box2d\n"},
		{"bad angle", "collision:\n  angle: 45\n"},
		{"negative cell", "collision:\n  cellSize: -1\n"},
		{"not yaml", "collision: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.yaml": &fstest.MapFile{Data: []byte(tt.doc + "physics:\n  gravity: 9\n")}}
			assert.Error(t, LoadFile(fsys, "bad.yaml"))
			assert.Equal(t, EngineCustom, Collision.Engine)
			assert.Equal(t, 0.75, Physics.Gravity, "a rejected file changes nothing")
		})
	}

	assert.Error(t, LoadFile(fstest.MapFS{}, "missing.yaml"))
}
