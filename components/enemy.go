package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stonedelve/config"
)

type EnemyData struct {
	TypeName   string                  // "Slime", "Bat", "Worm"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Direction  Vector

	// Behavior timers
	HopTimer    int // frames until the next hop (hopping types)
	WanderTimer int // frames until the next direction change (flying types)
	HitFlash    int // frames of damage flash remaining
}

var Enemy = donburi.NewComponentType[EnemyData]()
