package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the sandbox uses.
const Default ecs.LayerID = iota

// Collision backends selectable through CollisionConfig.Engine.
const (
	EngineCustom = "custom"
	EngineNative = "native"
)

// Config holds general sandbox configuration
type Config struct {
	Width  int
	Height int
	// TPS is the fixed update rate; one collision frame runs per tick.
	TPS int
}

// CollisionConfig selects and tunes the collision backend
type CollisionConfig struct {
	Engine string `yaml:"engine"`
	// Simple switches the custom engine to axis-separated resolution.
	Simple bool `yaml:"simple"`
	// Angle is the world rotation in degrees: 0, 90, 180 or 270.
	Angle    int `yaml:"angle"`
	CellSize int `yaml:"cellSize"`
}

// PhysicsConfig contains the global physics values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Friction     float64 `yaml:"friction"`
	IceFriction  float64 `yaml:"iceFriction"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// PlatformConfig contains moving platform defaults. A spawn's own
// properties take precedence.
type PlatformConfig struct {
	// Travel is how far a platform moves before turning back, in pixels.
	Travel float64 `yaml:"travel"`
	// Duration is the time one leg takes, in seconds.
	Duration float32 `yaml:"duration"`
	// SwayDuration is the leg time of a swaying tile layer.
	SwayDuration float32 `yaml:"swayDuration"`
}

// LevelConfig points at the level files.
type LevelConfig struct {
	Dir   string `yaml:"dir"`
	Start string `yaml:"start"`
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
	// ShowTiles draws every solid tile, not only those near objects.
	ShowTiles bool `yaml:"showTiles"`
}

// Global configuration instances
var C *Config
var Collision CollisionConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Platform PlatformConfig
var Level LevelConfig
var Debug DebugConfig

// Debug draw colors
var (
	TileColor       = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	UnisolidColor   = color.RGBA{R: 90, G: 140, B: 90, A: 255}
	IceColor        = color.RGBA{R: 150, G: 210, B: 255, A: 255}
	HurtsColor      = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	PlayerColor     = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	PlatformColor   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	WallColor       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	PushableColor   = color.RGBA{R: 160, G: 110, B: 60, A: 255}
	SensorColor     = color.RGBA{R: 255, G: 0, B: 255, A: 120}
	HitColor        = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BackgroundColor = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	// BackgroundFill dims the screen behind the pause text.
	BackgroundFill  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Collision = CollisionConfig{
		Engine:   EngineCustom,
		Simple:   false,
		Angle:    0,
		CellSize: 32,
	}

	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 10.0,
	}

	Player = PlayerConfig{
		JumpSpeed:    11.0,
		Acceleration: 0.75,
		MaxSpeed:     5.0,
		Friction:     0.5,
		IceFriction:  0.05,

		CollisionWidth:  14,
		CollisionHeight: 28,
	}

	Platform = PlatformConfig{
		Travel:       96,
		Duration:     2,
		SwayDuration: 3,
	}

	Level = LevelConfig{
		Dir:   "levels",
		Start: "sandbox",
	}

	Debug = DebugConfig{
		Enabled:   true,
		ShowTiles: true,
	}
}
