package systems

import (
	"github.com/automoto/stonedelve/components"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/shared/tilemap"
)

// stepBody runs one integration step for a body and transfers the contact
// flags back onto it. Returns the pre-step box so callers can run the
// corrective passes (ledge hang, platform snap) that compare before and after.
func stepBody(world tilemap.TileWorld, body *components.BodyData, gravity bool) gamemath.BoundingBox {
	before := body.Box
	res := gamemath.Integrate(world, body.Box, gravity)
	body.Box = res.Body
	// Integrate consumes horizontal velocity; keep the commanded speed on the
	// body so knockback decay and the camera read it after the step.
	body.Box.VX = before.VX
	body.OnGround = res.OnBottom
	body.OnCeiling = res.OnTop
	body.OnLeft = res.OnLeft
	body.OnRight = res.OnRight
	return before
}

// landOnPlatforms applies the one-way platform corrective pass unless the
// body is deliberately dropping through.
func landOnPlatforms(world tilemap.TileWorld, body *components.BodyData, before gamemath.BoundingBox) {
	if body.DropTimer > 0 {
		body.DropTimer--
		return
	}
	if gamemath.CheckPlatformSnap(before, &body.Box, world) {
		body.OnGround = true
	}
}
