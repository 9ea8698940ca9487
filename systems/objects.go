package systems

import (
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors every tile-space body into its pixel-space resolv
// object and refreshes the space cells. Must run after the movement systems
// and before UpdateContacts.
func UpdateObjects(ecs *ecs.ECS) {
	ts := float64(cfg.C.TileSize)

	// The resolv space starts at (0, 0) but assembled dungeons can extend
	// into negative tile coordinates, so objects are shifted by the dungeon
	// origin. Contacts only compare object positions relative to each other.
	var offX, offY float64
	if world := getDungeon(ecs); world != nil {
		minX, minY, _, _ := world.Bounds()
		offX, offY = float64(minX), float64(minY)
	}

	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Body) {
			continue
		}
		obj := components.Object.Get(e)
		body := components.Body.Get(e)
		obj.X = (body.Box.X - offX) * ts
		obj.Y = (body.Box.Y - offY) * ts
		obj.Update()
	}
}
