package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Wall     = donburi.NewTag().SetName("Wall")
	Pushable = donburi.NewTag().SetName("Pushable")
	Sensor   = donburi.NewTag().SetName("Sensor")
)

// Spawn classes read from the level's object groups
const (
	SpawnPlayer   = "player"
	SpawnPlatform = "platform"
	SpawnBlock    = "block"
	SpawnPushable = "pushable"
	SpawnSensor   = "sensor"
)
