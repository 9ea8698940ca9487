package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction    Vector
	InvulnFrames int // Invulnerability frames timer

	// SpawnX/Y is where the player re-enters the dungeon after dying.
	SpawnX float64
	SpawnY float64

	// Deaths counts deaths this run; the run ends once it reaches
	// config.Player.MaxDeaths.
	Deaths int
}

var Player = donburi.NewComponentType[PlayerData]()
