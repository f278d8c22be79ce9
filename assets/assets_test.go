package assets

import (
	"testing"

	"github.com/automoto/doomerang-physics/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxLevelLoads(t *testing.T) {
	levels, names, err := tilemap.LoadAll(Levels(), LevelDir)
	require.NoError(t, err)
	require.Contains(t, names, "sandbox")

	m := levels["sandbox"]
	assert.Equal(t, 40, m.Width)
	assert.Equal(t, 22, m.Height)
	assert.Len(t, m.SolidLayers(), 2)
	assert.Len(t, m.Spawns("player"), 1)
	assert.Len(t, m.Spawns("platform"), 2)

	drift, ok := m.Layer("drift")
	require.True(t, ok)
	assert.Equal(t, 32.0, drift.Sway)
}
