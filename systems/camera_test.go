package systems

import (
	"testing"

	"github.com/automoto/stonedelve/components"
	"github.com/automoto/stonedelve/shared/dungeon"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/automoto/stonedelve/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCameraLooksAheadWhileMoving(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	// A dungeon larger than the screen so neither axis centers.
	room := tilemap.NewBoxedRoom(60, 40)
	d := dungeon.New()
	d.AddRoom(room)
	d.Flatten()

	dungeonEntry := e.World.Entry(e.World.Create(components.Dungeon))
	components.Dungeon.SetValue(dungeonEntry, components.DungeonData{Dungeon: d})

	cameraEntry := e.World.Entry(e.World.Create(components.Camera))
	components.Camera.SetValue(cameraEntry, components.CameraData{})

	playerEntry := e.World.Entry(e.World.Create(tags.Player, components.Player, components.Body))
	components.Player.SetValue(playerEntry, components.PlayerData{
		Direction: components.Vector{X: 1},
	})
	components.Body.SetValue(playerEntry, components.BodyData{
		Box: gamemath.BoundingBox{X: 30, Y: 20, W: 0.6, H: 0.8, VX: 0.04},
	})

	camera := components.Camera.Get(cameraEntry)
	UpdateCamera(e)

	if camera.LookAheadX <= 0 {
		t.Errorf("look-ahead = %v after a rightward step, want > 0", camera.LookAheadX)
	}
}
