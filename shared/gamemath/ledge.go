package gamemath

import (
	"math"

	"github.com/automoto/stonedelve/shared/tilemap"
)

// HangReach is how close, in tiles, the leading edge must be to the wall for
// a ledge grab.
const HangReach = 0.10

// CheckHang detects a ledge grab between two integration snapshots: the body
// fell across a tile row boundary, is pressing toward dir, and the adjacent
// column has a one-tile lip there — solid at the row the top edge crossed
// into, open one row above. On success it returns the snapped position, flush
// against the wall with the top aligned to the lip's top edge.
func CheckHang(before, after BoundingBox, world tilemap.TileWorld, dir tilemap.Dir) (Pos, bool) {
	if after.Y <= before.Y {
		return Pos{}, false
	}
	if math.Floor(before.Y) == math.Floor(after.Y) {
		return Pos{}, false
	}

	row := int(math.Floor(after.Y))
	col := int(math.Floor(after.X))

	var sideCol int
	switch dir {
	case tilemap.DirRight:
		if float64(col+1)-after.Right() > HangReach {
			return Pos{}, false
		}
		sideCol = col + 1
	case tilemap.DirLeft:
		if after.X-float64(col) > HangReach {
			return Pos{}, false
		}
		sideCol = col - 1
	default:
		return Pos{}, false
	}

	if !tilemap.IsSolid(world, sideCol, row) || tilemap.IsSolid(world, sideCol, row-1) {
		return Pos{}, false
	}

	x := math.Floor(after.X)
	if dir == tilemap.DirRight {
		x += 1 - after.W
	}
	return Pos{X: x, Y: math.Floor(after.Y)}, true
}
