package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Door   = donburi.NewTag().SetName("Door")
)

// Resolv tags for entity contact detection
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
