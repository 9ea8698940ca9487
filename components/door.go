package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/stonedelve/shared/dungeon"
)

// DoorData animates one inter-room door. Openness runs from 1 (fully open)
// to 0 (shut); the collision state lives on the dungeon.Door itself.
type DoorData struct {
	Door     *dungeon.Door
	Tween    *gween.Tween
	Openness float64

	// PlayerInside tracks whether the player's bounding box overlapped the
	// door cell last frame, for edge-triggering the close-behind mechanic.
	PlayerInside bool
}

var Door = donburi.NewComponentType[DoorData]()
