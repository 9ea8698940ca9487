package systems

import (
	"math"

	"github.com/automoto/stonedelve/components"
	"github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player in pixel space with a smoothed horizontal
// look-ahead, clamped to the dungeon's bounding box.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerBody := components.Body.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)

	world := getDungeon(e)
	if world == nil {
		return
	}

	ts := float64(config.C.TileSize)
	center := playerBody.Box.Center()

	// Only update look-ahead when the player is moving; freeze it when idle
	if playerBody.Box.VX != 0 {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
		camera.LookAheadX = gamemath.ClampSpeed(camera.LookAheadX, config.Camera.LookAheadDistanceX)
	}

	targetX := center.X*ts + camera.LookAheadX
	targetY := center.Y * ts

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	bx, by, bw, bh := world.Bounds()
	minX, minY := float64(bx)*ts, float64(by)*ts
	maxX, maxY := float64(bx+bw)*ts, float64(by+bh)*ts

	// Clamp so the view never leaves the dungeon; center on axes where the
	// dungeon is smaller than the screen.
	targetX = clampCameraAxis(targetX, minX, maxX, screenWidth)
	targetY = clampCameraAxis(targetY, minY, maxY, screenHeight)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampCameraAxis(target, lo, hi, span float64) float64 {
	if hi-lo <= span {
		return (lo + hi) / 2
	}
	return math.Max(lo+span/2, math.Min(hi-span/2, target))
}

// SnapCameraTo centers the camera immediately, skipping the smoothing pan.
func SnapCameraTo(e *ecs.ECS, wx, wy float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	ts := float64(config.C.TileSize)
	camera.Position.X = wx * ts
	camera.Position.Y = wy * ts
}
