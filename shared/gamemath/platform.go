package gamemath

import (
	"math"

	"github.com/automoto/stonedelve/shared/tilemap"
)

// CheckPlatformSnap lands a falling body on a one-way platform. Platforms are
// not solid for the sweep — movement from below must pass through — so this
// runs after the integrator's vertical resolution as a corrective pass. It
// triggers when the bottom edge crosses a tile row downward (was above, now
// at or below) and that row carries a platform overlay under either bottom
// corner; on trigger it zeroes vertical velocity and snaps the bottom edge
// onto the platform's top, mutating after in place.
func CheckPlatformSnap(before BoundingBox, after *BoundingBox, world tilemap.TileWorld) bool {
	if after.Bottom() <= before.Bottom() {
		return false
	}

	row := int(math.Floor(after.Bottom()))
	if before.Bottom() > float64(row) {
		return false
	}

	left := int(math.Floor(after.X))
	right := int(math.Floor(after.Right() - tilemap.CornerEpsilon))
	if !tilemap.IsPlatform(world, left, row) && !tilemap.IsPlatform(world, right, row) {
		return false
	}

	after.Y = float64(row) - after.H
	after.VY = 0
	return true
}
