package systems

import (
	"github.com/automoto/doomerang-physics/archetypes"
	"github.com/automoto/doomerang-physics/components"
	cfg "github.com/automoto/doomerang-physics/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = pollInput()
}

func pollInput() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}
	return pressed
}

// controls returns the singleton entry holding input, pause and settings
// state, creating it on first use.
func controls(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Input.First(ecs.World); ok {
		return entry
	}
	return archetypes.Controls.Spawn(ecs)
}

func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(controls(ecs))
}

func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	return components.Pause.Get(controls(ecs))
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	return components.Settings.Get(controls(ecs))
}
