package config

import (
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-physics/collision"
	"gopkg.in/yaml.v3"
)

// File is the layout of an override file. Sections left out keep their
// current values.
type File struct {
	Collision *CollisionConfig `yaml:"collision"`
	Physics   *PhysicsConfig   `yaml:"physics"`
	Player    *PlayerConfig    `yaml:"player"`
	Platform  *PlatformConfig  `yaml:"platform"`
	Level     *LevelConfig     `yaml:"level"`
	Debug     *DebugConfig     `yaml:"debug"`
}

// LoadFile overlays the YAML document at path onto the global
// configuration. Nothing changes if the document is invalid.
func LoadFile(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	// Decode over copies so that keys missing from the file keep their
	// current values.
	collisionCfg, physics, player := Collision, Physics, Player
	platform, level, debug := Platform, Level, Debug
	f := File{
		Collision: &collisionCfg,
		Physics:   &physics,
		Player:    &player,
		Platform:  &platform,
		Level:     &level,
		Debug:     &debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := collisionCfg.Validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	Collision, Physics, Player = collisionCfg, physics, player
	Platform, Level, Debug = platform, level, debug
	return nil
}

// Validate rejects backends and angles the sandbox cannot run.
func (c CollisionConfig) Validate() error {
	switch c.Engine {
	case EngineCustom, EngineNative:
	default:
		return fmt.Errorf("unknown collision engine %q", c.Engine)
	}
	if _, err := collision.ParseAngle(c.Angle); err != nil {
		return err
	}
	if c.CellSize < 0 {
		return fmt.Errorf("negative cell size %d", c.CellSize)
	}
	return nil
}

// WorldAngle is the configured rotation, normalised. An invalid value
// falls back to no rotation.
func (c CollisionConfig) WorldAngle() collision.Angle {
	a, err := collision.ParseAngle(c.Angle)
	if err != nil {
		return collision.Angle0
	}
	return a
}
