package components

import "github.com/yohamta/donburi"

// SettingsData carries requests the scene has to act on.
type SettingsData struct {
	// Rebuild asks for the level to be rebuilt with the current collision
	// configuration, after a backend or mode switch.
	Rebuild bool
}

var Settings = donburi.NewComponentType[SettingsData]()
