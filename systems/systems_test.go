package systems

import (
	"testing"

	"github.com/automoto/doomerang-physics/collision"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/automoto/doomerang-physics/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns a world with an empty custom-engine space. Config
// globals touched by the systems are restored afterwards.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	collisionCfg, debug := cfg.Collision, cfg.Debug
	t.Cleanup(func() {
		cfg.Collision, cfg.Debug = collisionCfg, debug
	})
	cfg.Collision.Engine = cfg.EngineCustom
	cfg.Collision.Simple = false
	cfg.Collision.Angle = 0

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, nil)
	return e
}

// press makes action a fresh press for this frame.
func press(e *ecs.ECS, a cfg.ActionID) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[a] = true
}

func step(e *ecs.ECS, frames int) {
	for i := 0; i < frames; i++ {
		UpdatePlayer(e)
		UpdatePlatforms(e)
		UpdatePhysics(e)
		UpdateCollisions(e)
	}
}

func TestPlayerLandsOnWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, collision.Rect{X: 0, Y: 100, W: 64, H: 16})
	player := factory.CreatePlayer(e, collision.Rect{X: 8, Y: 0, W: 16, H: 60})

	step(e, 60)

	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)
	assert.True(t, physics.OnGround)
	assert.Zero(t, physics.SpeedY)
	assert.InDelta(t, 100, obj.BBox().Bottom(), 0.01)
	assert.InDelta(t, obj.BBox().Y, obj.Body.Box.Y, 1e-9, "body follows the collider")
}

func TestPlayerJumpsOnlyFromGround(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, collision.Rect{W: 16, H: 32})
	physics := components.Physics.Get(player)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	assert.Zero(t, physics.SpeedY)

	physics.OnGround = true
	press(e, cfg.ActionNone)
	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestPlayerSteering(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, collision.Rect{W: 16, H: 32})

	press(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)
	assert.Equal(t, -cfg.Player.Acceleration, components.Physics.Get(player).AccelX)
	assert.Equal(t, -1.0, components.Player.Get(player).Direction)

	press(e, cfg.ActionNone)
	UpdatePlayer(e)
	assert.Zero(t, components.Physics.Get(player).AccelX)
}

func TestPlayerRespawns(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(e *ecs.ECS, player *donburi.Entry)
		deaths int
	}{
		{"crushed", func(_ *ecs.ECS, p *donburi.Entry) { components.Player.Get(p).Crushed = true }, 1},
		{"hurt", func(_ *ecs.ECS, p *donburi.Entry) { components.Player.Get(p).Hurt = true }, 1},
		{"reset", func(e *ecs.ECS, _ *donburi.Entry) { press(e, cfg.ActionReset) }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			player := factory.CreatePlayer(e, collision.Rect{X: 10, Y: 10, W: 16, H: 32})
			spawn := components.Player.Get(player).Spawn

			obj := components.Object.Get(player)
			obj.Body.Box = spawn.Moved(collision.Vector{X: 200, Y: 50})
			components.Physics.Get(player).SpeedX = 3

			tt.setup(e, player)
			UpdatePlayer(e)

			assert.Equal(t, spawn, obj.Body.Box)
			assert.Zero(t, components.Physics.Get(player).SpeedX)
			assert.Equal(t, tt.deaths, components.Player.Get(player).Deaths)
			assert.False(t, components.Player.Get(player).Crushed)
		})
	}
}

func TestPlatformFollowsTween(t *testing.T) {
	e := newTestECS(t)
	platform := factory.CreatePlatform(e, collision.Rect{X: 0, Y: 100, W: 32, H: 8}, 0, -30, 1)
	obj := components.Object.Get(platform)

	step(e, 30)
	assert.InDelta(t, 85, obj.BBox().Y, 0.5)

	// Up and back down again.
	step(e, 90)
	assert.InDelta(t, 100, obj.BBox().Y, 1)
	assert.Equal(t, 0.0, obj.BBox().X)
}

func TestPlatformCarriesPlayer(t *testing.T) {
	e := newTestECS(t)
	platform := factory.CreatePlatform(e, collision.Rect{X: 0, Y: 100, W: 64, H: 8}, 40, 0, 1)
	player := factory.CreatePlayer(e, collision.Rect{X: 16, Y: 60, W: 16, H: 40})

	step(e, 10)
	require.True(t, components.Physics.Get(player).OnGround)
	startX := components.Object.Get(player).BBox().X
	platformX := components.Object.Get(platform).BBox().X

	step(e, 20)
	moved := components.Object.Get(platform).BBox().X - platformX
	assert.Greater(t, moved, 5.0)
	assert.InDelta(t, startX+moved, components.Object.Get(player).BBox().X, 0.5)
}

func TestApplyHit(t *testing.T) {
	tests := []struct {
		name           string
		hit            collision.Hit
		speedX, speedY float64
		wantX, wantY   float64
		ground         bool
	}{
		{"landing", collision.Hit{Bottom: true}, 2, 5, 2, 0, true},
		{"ceiling", collision.Hit{Top: true}, 2, -5, 2, 0, false},
		{"wall ahead", collision.Hit{Right: true}, 3, 1, 0, 1, false},
		{"wall behind", collision.Hit{Left: true}, 3, 1, 3, 1, false},
		{"no hit", collision.Hit{}, 3, 1, 3, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := collision.NewRectBody(collision.Rect{W: 8, H: 8}, collision.KindPlayer)
			obj := &components.ObjectData{Object: collision.NewObject(body, nil), Body: body}
			obj.Report(tt.hit)
			physics := &components.PhysicsData{SpeedX: tt.speedX, SpeedY: tt.speedY}

			applyHit(physics, obj)

			assert.Equal(t, tt.wantX, physics.SpeedX)
			assert.Equal(t, tt.wantY, physics.SpeedY)
			assert.Equal(t, tt.ground, physics.OnGround)
		})
	}
}

func TestRotateWorld(t *testing.T) {
	e := newTestECS(t)
	space, ok := GetSpace(e)
	require.True(t, ok)

	press(e, cfg.ActionRotateWorld)
	UpdateSettings(e)

	assert.Equal(t, collision.Angle90, space.Angle)
	assert.Equal(t, collision.Angle90, space.System().Angle())
	assert.Equal(t, 90, cfg.Collision.Angle)
	assert.False(t, GetOrCreateSettings(e).Rebuild)
}

func TestEngineSwitchRequestsRebuild(t *testing.T) {
	e := newTestECS(t)

	press(e, cfg.ActionSwitchEngine)
	UpdateSettings(e)
	assert.Equal(t, cfg.EngineNative, cfg.Collision.Engine)
	assert.True(t, GetOrCreateSettings(e).Rebuild)

	GetOrCreateSettings(e).Rebuild = false
	press(e, cfg.ActionToggleSimple)
	UpdateSettings(e)
	assert.True(t, cfg.Collision.Simple)
	assert.True(t, GetOrCreateSettings(e).Rebuild)
}

func TestNextAngleCycles(t *testing.T) {
	a := collision.Angle0
	seen := []collision.Angle{a}
	for i := 0; i < 4; i++ {
		a = nextAngle(a)
		seen = append(seen, a)
	}
	assert.Equal(t, []collision.Angle{
		collision.Angle0, collision.Angle90, collision.Angle180, collision.Angle270, collision.Angle0,
	}, seen)
}

func TestPauseFreezesSystems(t *testing.T) {
	e := newTestECS(t)
	space, _ := GetSpace(e)
	calls := 0
	counted := WithPauseCheck(func(*ecs.ECS) { calls++ })

	counted(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	counted(e)

	assert.Equal(t, 1, calls)
	assert.True(t, GetOrCreatePause(e).IsPaused)
	assert.True(t, space.System().Paused())

	press(e, cfg.ActionNone)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	counted(e)
	assert.Equal(t, 2, calls)
	assert.False(t, space.System().Paused())
}

func TestControlsAreSingleton(t *testing.T) {
	e := newTestECS(t)
	GetOrCreateInput(e)
	GetOrCreatePause(e)
	GetOrCreateSettings(e)

	count := 0
	components.Input.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Equal(t, 1, count)
}

func TestApplySavedSettings(t *testing.T) {
	newTestECS(t)

	ApplySavedSettings(&SavedSettings{Engine: "box2d", Simple: true, Angle: 90})
	assert.Equal(t, cfg.EngineCustom, cfg.Collision.Engine, "invalid settings are ignored")
	assert.False(t, cfg.Collision.Simple)

	ApplySavedSettings(&SavedSettings{Engine: cfg.EngineNative, Simple: true, Angle: 180, Debug: false})
	assert.Equal(t, &SavedSettings{Engine: cfg.EngineNative, Simple: true, Angle: 180}, CurrentSettings())

	assert.NotPanics(t, func() { ApplySavedSettings(nil) })
}
