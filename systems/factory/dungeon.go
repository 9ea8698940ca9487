package factory

import (
	"io/fs"
	"log"

	"github.com/automoto/stonedelve/archetypes"
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/dungeon"
	"github.com/automoto/stonedelve/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDungeon assembles a dungeon from the room templates under fsys and
// spawns the singleton dungeon entity plus one entity per inter-room door.
func CreateDungeon(ecs *ecs.ECS, fsys fs.FS, seed int64) (*donburi.Entry, *dungeon.Dungeon, error) {
	templates, err := tilemap.LoadRoomFolder(fsys, cfg.Dungeon.RoomsDir)
	if err != nil || len(templates) == 0 {
		log.Printf("Warning: no room templates loaded, using built-ins: %v", err)
		templates = builtinTemplates()
	}

	asm := dungeon.NewAssembler(templates, dungeon.AssemblerConfig{
		TargetRooms: cfg.Dungeon.TargetRooms,
		MaxAttempts: cfg.Dungeon.MaxAttempts,
		Seed:        seed,
	})
	d, err := asm.Generate()
	if err != nil {
		return nil, nil, err
	}

	entry := archetypes.Dungeon.Spawn(ecs)
	components.Dungeon.SetValue(entry, components.DungeonData{
		Dungeon: d,
		Seed:    seed,
	})

	for _, door := range d.Doors {
		doorEntry := archetypes.Door.Spawn(ecs)
		components.Door.SetValue(doorEntry, components.DoorData{
			Door:     door,
			Openness: 1,
		})
	}

	return entry, d, nil
}

// builtinTemplates is the fallback room pool when no template files are
// available. A hall, a ladder shaft and a cavern, door-compatible with each
// other on all four facings.
func builtinTemplates() []*tilemap.Room {
	hall := tilemap.NewBoxedRoom(12, 8)
	hall.SetDoor(tilemap.Door{X: 0, Y: 6, Dir: tilemap.DirLeft})
	hall.SetDoor(tilemap.Door{X: 11, Y: 6, Dir: tilemap.DirRight})
	hall.SetDoor(tilemap.Door{X: 6, Y: 0, Dir: tilemap.DirUp})
	for cx := 4; cx <= 7; cx++ {
		hall.SetOverlay(cx, 5, tilemap.OverlayPlatform)
	}
	hall.Spawns = []tilemap.SpawnTemplate{{X: 6, Y: 6.2, EnemyType: "Slime"}}

	shaft := tilemap.NewBoxedRoom(10, 10)
	shaft.SetDoor(tilemap.Door{X: 0, Y: 8, Dir: tilemap.DirLeft})
	shaft.SetDoor(tilemap.Door{X: 9, Y: 8, Dir: tilemap.DirRight})
	shaft.SetDoor(tilemap.Door{X: 5, Y: 0, Dir: tilemap.DirUp})
	shaft.SetDoor(tilemap.Door{X: 5, Y: 9, Dir: tilemap.DirDown})
	for cy := 1; cy <= 8; cy++ {
		shaft.SetOverlay(5, cy, tilemap.OverlayLadder)
	}
	shaft.Spawns = []tilemap.SpawnTemplate{{X: 2, Y: 8.2, EnemyType: "Worm"}}

	cavern := tilemap.NewBoxedRoom(14, 8)
	cavern.SetDoor(tilemap.Door{X: 0, Y: 6, Dir: tilemap.DirLeft})
	cavern.SetDoor(tilemap.Door{X: 13, Y: 6, Dir: tilemap.DirRight})
	cavern.SetDoor(tilemap.Door{X: 7, Y: 7, Dir: tilemap.DirDown})
	for cx := 3; cx <= 5; cx++ {
		cavern.SetOverlay(cx, 5, tilemap.OverlayPlatform)
	}
	for cx := 8; cx <= 10; cx++ {
		cavern.SetOverlay(cx, 3, tilemap.OverlayPlatform)
	}
	cavern.Spawns = []tilemap.SpawnTemplate{
		{X: 7, Y: 2, EnemyType: "Bat"},
		{X: 10, Y: 6.3, EnemyType: "Worm"},
	}

	return []*tilemap.Room{hall, shaft, cavern}
}
