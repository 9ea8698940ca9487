package gamemath

import (
	"math"
	"testing"

	"github.com/automoto/stonedelve/shared/tilemap"
)

// buildWorld turns an ASCII sketch into a room usable as a TileWorld:
// '#' stone, '.' empty, '=' one-way platform, 'H' ladder.
func buildWorld(t *testing.T, rows []string) *tilemap.Room {
	t.Helper()
	r := tilemap.NewRoom(len(rows[0]), len(rows))
	for cy, row := range rows {
		for cx, c := range row {
			switch c {
			case '#':
				r.SetTile(cx, cy, tilemap.BaseStone, tilemap.OverlayNone)
			case '.':
				r.SetTile(cx, cy, tilemap.BaseEmpty, tilemap.OverlayNone)
			case '=':
				r.SetTile(cx, cy, tilemap.BaseEmpty, tilemap.OverlayPlatform)
			case 'H':
				r.SetTile(cx, cy, tilemap.BaseEmpty, tilemap.OverlayLadder)
			default:
				t.Fatalf("unknown tile %q", c)
			}
		}
	}
	return r
}

func TestIntegrateZeroVelocityIsIdentity(t *testing.T) {
	w := buildWorld(t, []string{
		"....",
		"....",
		"####",
	})
	bb := BoundingBox{X: 1.25, Y: 0.5, W: 0.6, H: 0.8}

	res := Integrate(w, bb, false)

	if res.Body != bb {
		t.Errorf("body changed: %+v, want %+v", res.Body, bb)
	}
	if res.OnLeft || res.OnRight || res.OnTop || res.OnBottom {
		t.Errorf("blocked flags set on zero-velocity step: %+v", res)
	}
}

func TestIntegrateLandsFlushOnFloor(t *testing.T) {
	// Mover (0,0,1,1) falling at 0.5 onto the solid row at y=1 comes to rest
	// flush above it with vertical velocity zeroed.
	w := buildWorld(t, []string{
		"..",
		"##",
	})
	bb := BoundingBox{X: 0, Y: 0, W: 1, H: 1, VY: 0.5}

	res := Integrate(w, bb, false)

	if !res.OnBottom {
		t.Fatal("OnBottom not set")
	}
	if res.Body.VY != 0 {
		t.Errorf("VY = %v, want 0", res.Body.VY)
	}
	rest := 1.0 - res.Body.H
	if math.Abs(res.Body.Y-rest) > 2*SweepEpsilon {
		t.Errorf("rest Y = %v, want %v ± %v", res.Body.Y, rest, 2*SweepEpsilon)
	}
	if w.OverlapsAnySolid(res.Body.X, res.Body.Y, res.Body.W, res.Body.H) {
		t.Error("resting body overlaps the floor")
	}
}

func TestIntegrateBlocksHorizontal(t *testing.T) {
	w := buildWorld(t, []string{
		"..#",
		"..#",
		"###",
	})
	bb := BoundingBox{X: 0.2, Y: 1.1, W: 0.6, H: 0.8, VX: 3.0}

	res := Integrate(w, bb, false)

	if !res.OnRight || res.OnLeft {
		t.Errorf("blocked flags = %+v, want OnRight only", res)
	}
	if res.Body.Right() > 2.0 {
		t.Errorf("right edge %v passed the wall at 2", res.Body.Right())
	}
	if w.OverlapsAnySolid(res.Body.X, res.Body.Y, res.Body.W, res.Body.H) {
		t.Error("clamped body overlaps the wall")
	}
}

func TestIntegrateNeverTunnels(t *testing.T) {
	// Single-tile-thick walls on every side. No velocity magnitude the game
	// uses may land the body inside or beyond them.
	w := buildWorld(t, []string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	})
	start := BoundingBox{X: 2.2, Y: 2.1, W: 0.6, H: 0.8}

	for _, speed := range []float64{0.05, 0.3, 0.9, 2.5, 10, 100} {
		for _, vel := range [][2]float64{
			{speed, 0}, {-speed, 0}, {0, speed}, {0, -speed}, {speed, speed}, {-speed, -speed},
		} {
			bb := start
			bb.VX, bb.VY = vel[0], vel[1]
			for frame := 0; frame < 8; frame++ {
				res := Integrate(w, bb, false)
				if w.OverlapsAnySolid(res.Body.X, res.Body.Y, res.Body.W, res.Body.H) {
					t.Fatalf("vel %v: body %+v overlaps after frame %d", vel, res.Body, frame)
				}
				bb = res.Body
				bb.VX, bb.VY = vel[0], vel[1]
			}
		}
	}
}

func TestIntegrateStartOverlappingStaysPut(t *testing.T) {
	w := buildWorld(t, []string{
		"...",
		"###",
	})
	// Teleported into the floor: no de-penetration, just blocked flags.
	bb := BoundingBox{X: 1.1, Y: 1.2, W: 0.6, H: 0.8, VX: 0.2, VY: 0.3}

	res := Integrate(w, bb, true)

	if res.Body.X != bb.X || res.Body.Y != bb.Y {
		t.Errorf("position moved: (%v,%v), want (%v,%v)", res.Body.X, res.Body.Y, bb.X, bb.Y)
	}
	if !res.OnRight || !res.OnBottom {
		t.Errorf("blocked flags = %+v, want blocked along travel", res)
	}
	if res.Body.VY != 0 {
		t.Errorf("VY = %v, want 0", res.Body.VY)
	}
}

func TestGravityAccumulatesToTerminal(t *testing.T) {
	w := buildWorld(t, []string{
		".",
		".",
		".",
	})
	bb := BoundingBox{X: 0.2, Y: 0, W: 0.5, H: 0.5}

	res := Integrate(w, bb, true)
	if math.Abs(res.Body.VY-Gravity) > 1e-12 {
		t.Errorf("first-frame VY = %v, want %v", res.Body.VY, Gravity)
	}

	bb.VY = TerminalVelocity - 0.001
	res = Integrate(w, bb, true)
	if res.Body.VY > TerminalVelocity {
		t.Errorf("VY = %v exceeds terminal %v", res.Body.VY, TerminalVelocity)
	}
}
