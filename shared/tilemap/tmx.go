package tilemap

import (
	"fmt"

	"io/fs"

	"github.com/lafriks/go-tiled"
)

// ImportTMX converts a Tiled map into a Room template so rooms can be
// authored in Tiled instead of raw JSON. The "base" tile layer maps to the
// structural layer via the tileset tile property "material" ("stone" or
// "wood"; absent tiles are Empty, tiles without a material default to Stone).
// The "overlay" layer maps via the property "overlay" ("ladder", "platform",
// "ladder_platform"). Object groups "Doors" (string property "dir") and
// "Spawns" (string property "enemyType") fill the door set and the spawn
// templates.
func ImportTMX(fsys fs.FS, tmxPath string) (*Room, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	room := NewRoom(m.Width, m.Height)
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)

	for _, layer := range m.Layers {
		switch layer.Name {
		case "base":
			for i, t := range layer.Tiles {
				if t.IsNil() {
					room.Base[i] = BaseEmpty
					continue
				}
				room.Base[i] = BaseStone
				if tt, err := t.Tileset.GetTilesetTile(t.ID); err == nil {
					if tt.Properties.GetString("material") == "wood" {
						room.Base[i] = BaseWood
					}
				}
			}
		case "overlay":
			for i, t := range layer.Tiles {
				if t.IsNil() {
					continue
				}
				tt, err := t.Tileset.GetTilesetTile(t.ID)
				if err != nil {
					continue
				}
				switch tt.Properties.GetString("overlay") {
				case "ladder":
					room.Overlay[i] = OverlayLadder
				case "platform":
					room.Overlay[i] = OverlayPlatform
				case "ladder_platform":
					room.Overlay[i] = OverlayLadderPlatform
				}
			}
		}
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Doors":
			for _, o := range og.Objects {
				dir, err := parseDir(o.Properties.GetString("dir"))
				if err != nil {
					return nil, fmt.Errorf("TMX %s: door %d: %w", tmxPath, o.ID, err)
				}
				room.SetDoor(Door{
					X:   int(o.X / tileW),
					Y:   int(o.Y / tileH),
					Dir: dir,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				room.Spawns = append(room.Spawns, SpawnTemplate{
					X:         o.X / tileW,
					Y:         o.Y / tileH,
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		}
	}

	return room, nil
}

func parseDir(s string) (Dir, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return DirLeft, fmt.Errorf("unknown door direction %q", s)
}
