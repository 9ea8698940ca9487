package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/stonedelve/shared/dungeon"
)

type DungeonData struct {
	Dungeon *dungeon.Dungeon
	Seed    int64 // seed the layout was generated from
}

var Dungeon = donburi.NewComponentType[DungeonData]()
