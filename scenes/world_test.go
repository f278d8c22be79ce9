package scenes

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/doomerang-physics/assets"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/systems"
	"github.com/automoto/doomerang-physics/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const sandboxPath = "levels/sandbox.tmx"

func sandboxFS(t *testing.T) fstest.MapFS {
	t.Helper()
	data, err := fs.ReadFile(assets.Levels(), sandboxPath)
	require.NoError(t, err)
	return fstest.MapFS{sandboxPath: &fstest.MapFile{Data: data}}
}

func restoreCollision(t *testing.T) {
	saved := cfg.Collision
	t.Cleanup(func() { cfg.Collision = saved })
	cfg.Collision.Engine = cfg.EngineCustom
}

func count[T any](e *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestSandboxSceneBuilds(t *testing.T) {
	restoreCollision(t)
	s, err := NewSandboxScene(sandboxFS(t), sandboxPath)
	require.NoError(t, err)

	assert.Equal(t, 1, count(s.ecs, tags.Player))
	assert.Equal(t, 2, count(s.ecs, tags.Platform))
	assert.Equal(t, 1, count(s.ecs, tags.Sensor))

	space, ok := systems.GetSpace(s.ecs)
	require.True(t, ok)
	assert.Equal(t, cfg.EngineCustom, space.Engine)
	require.NotNil(t, space.System())
	// 1 player, 1 block, 1 crate, 1 sensor, 2 platforms.
	assert.Equal(t, 6, space.System().Len())
}

func TestRebuildSwitchesEngine(t *testing.T) {
	restoreCollision(t)
	s, err := NewSandboxScene(sandboxFS(t), sandboxPath)
	require.NoError(t, err)
	systems.GetOrCreateInput(s.ecs).Current[cfg.ActionSwitchEngine] = true
	old := s.ecs

	cfg.Collision.Engine = cfg.EngineNative
	systems.GetOrCreateSettings(s.ecs).Rebuild = true
	s.applyRequests()

	require.NotSame(t, old, s.ecs)
	space, ok := systems.GetSpace(s.ecs)
	require.True(t, ok)
	assert.Equal(t, cfg.EngineNative, space.Engine)
	assert.Nil(t, space.System())
	assert.False(t, systems.GetOrCreateSettings(s.ecs).Rebuild)
	assert.True(t, systems.GetOrCreateInput(s.ecs).Current[cfg.ActionSwitchEngine],
		"held keys survive the rebuild")
}

func TestRebuildKeepsPause(t *testing.T) {
	restoreCollision(t)
	s, err := NewSandboxScene(sandboxFS(t), sandboxPath)
	require.NoError(t, err)

	systems.GetOrCreatePause(s.ecs).IsPaused = true
	require.NoError(t, s.Reload())

	space, _ := systems.GetSpace(s.ecs)
	assert.True(t, systems.GetOrCreatePause(s.ecs).IsPaused)
	assert.True(t, space.System().Paused())
}

func TestReloadKeepsWorldOnError(t *testing.T) {
	restoreCollision(t)
	fsys := sandboxFS(t)
	s, err := NewSandboxScene(fsys, sandboxPath)
	require.NoError(t, err)
	old := s.ecs

	fsys[sandboxPath] = &fstest.MapFile{Data: []byte("not a map")}
	assert.Error(t, s.Reload())
	assert.Same(t, old, s.ecs)

	_, err = NewSandboxScene(fsys, "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLevelComponentHoldsMap(t *testing.T) {
	restoreCollision(t)
	s, err := NewSandboxScene(sandboxFS(t), sandboxPath)
	require.NoError(t, err)

	entry, ok := components.Level.First(s.ecs.World)
	require.True(t, ok)
	level := components.Level.Get(entry)
	assert.Equal(t, "sandbox", level.Map.Name)
	assert.Len(t, level.Sway, 1, "only the drift layer sways")
}
