package systems

import (
	"testing"

	"github.com/automoto/stonedelve/components"
	cfg "github.com/automoto/stonedelve/config"
	"github.com/automoto/stonedelve/shared/gamemath"
	"github.com/automoto/stonedelve/shared/tilemap"
)

func TestStepBodyKeepsCommandedSpeed(t *testing.T) {
	room := tilemap.NewBoxedRoom(8, 6)
	body := &components.BodyData{
		Box: gamemath.BoundingBox{X: 2, Y: 4.19, W: 0.6, H: 0.8, VX: 0.04},
	}

	stepBody(room, body, true)

	if body.Box.VX != 0.04 {
		t.Errorf("VX = %v after the step, want the commanded 0.04", body.Box.VX)
	}
	if body.Box.X <= 2 {
		t.Errorf("body did not advance: x = %v", body.Box.X)
	}
}

func TestKnockbackShoveDecaysOverHitStun(t *testing.T) {
	room := tilemap.NewBoxedRoom(12, 6)
	body := &components.BodyData{
		Box: gamemath.BoundingBox{X: 2, Y: 4.19, W: 0.6, H: 0.8, VX: cfg.Player.WalkSpeed},
	}
	start := body.Box.X

	// The hit-stun loop from the player system: decay, then integrate.
	for i := 0; i < cfg.Player.HitStunFrames; i++ {
		body.Box.VX = gamemath.ApplyFriction(body.Box.VX, cfg.Player.KnockbackFriction)
		stepBody(room, body, true)
	}

	moved := body.Box.X - start
	if moved < 0.1 {
		t.Errorf("shove died after one frame: moved %.4f tiles over %d frames",
			moved, cfg.Player.HitStunFrames)
	}
	if body.Box.VX != 0 {
		t.Errorf("shove speed not fully decayed: VX = %v", body.Box.VX)
	}
}
