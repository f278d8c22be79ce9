package components

import (
	"github.com/automoto/doomerang-physics/collision"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64
	Spawn     collision.Rect
	// Crushed and Hurt request a respawn on the next player update.
	Crushed bool
	Hurt    bool
	Deaths  int
}

var Player = donburi.NewComponentType[PlayerData]()
