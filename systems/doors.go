package systems

import (
	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// doorAnimFrames is how long the door slab takes to slide shut or open.
const doorAnimFrames = 20

// UpdateDoors advances door countdowns and shuts doors behind the player:
// once the player's whole bounding box has passed through an open doorway and
// cleared its cell, the door slams for DoorClosedFrames. The trigger waits
// for full clearance because a shut door is solid immediately, and a body
// still overlapping the cell would be pinned by the start-overlap rule.
func UpdateDoors(e *ecs.ECS) {
	var box gamemath.BoundingBox
	havePlayer := false
	if playerEntry, ok := tags.Player.First(e.World); ok {
		box = components.Body.Get(playerEntry).Box
		havePlayer = true
	}

	components.Door.Each(e.World, func(entry *donburi.Entry) {
		d := components.Door.Get(entry)

		wasOpen := d.Door.Open
		d.Door.Tick()
		if !wasOpen && d.Door.Open {
			d.Tween = gween.New(float32(d.Openness), 1, doorAnimFrames, ease.Linear)
		}

		if havePlayer {
			cell := gamemath.BoundingBox{
				X: float64(d.Door.X), Y: float64(d.Door.Y), W: 1, H: 1,
			}
			inside := box.Overlaps(cell)
			if d.Door.Open && d.PlayerInside && !inside {
				d.Door.CloseFor(cfg.Dungeon.DoorClosedFrames)
				d.Tween = gween.New(float32(d.Openness), 0, doorAnimFrames, ease.OutQuad)
			}
			d.PlayerInside = inside
		}

		if d.Tween != nil {
			v, done := d.Tween.Update(1)
			d.Openness = float64(v)
			if done {
				d.Tween = nil
			}
		}
	})
}
